package handlers

import (
	"context"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

/* =======================
   REQUEST DTOs
======================= */

type ProductCreateRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	Price           float64 `json:"price"`
	Category        string  `json:"category" binding:"required"`
	Image           string  `json:"image" binding:"required"`
	Availability    *bool   `json:"availability"`
	IndianSpecialty bool    `json:"indianSpecialty"`
	SpiceLevel      string  `json:"spiceLevel"`
	Vegetarian      bool    `json:"vegetarian"`
}

type ProductUpdateRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	Category        *string  `json:"category"`
	Image           *string  `json:"image"`
	Availability    *bool    `json:"availability"`
	IndianSpecialty *bool    `json:"indianSpecialty"`
	SpiceLevel      *string  `json:"spiceLevel"`
	Vegetarian      *bool    `json:"vegetarian"`
}

func validateProductFields(name, description string, price float64, category, spiceLevel string) string {
	if strings.TrimSpace(name) == "" {
		return "name required"
	}
	if len(name) > 100 {
		return "name cannot exceed 100 characters"
	}
	if strings.TrimSpace(description) == "" {
		return "description required"
	}
	if len(description) > 500 {
		return "description cannot exceed 500 characters"
	}
	if price < 0 {
		return "price cannot be negative"
	}
	if !models.Category(category).Valid() {
		return "unknown category"
	}
	if spiceLevel != "" && !models.SpiceLevel(spiceLevel).Valid() {
		return "unknown spice level"
	}
	return ""
}

/* =======================
   GET (ADMIN) – LIST
======================= */

func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		if availability := strings.TrimSpace(c.Query("availability")); availability != "" {
			filter["availability"] = strings.EqualFold(availability, "true")
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = int64(math.Ceil(float64(total) / float64(limit)))
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"
		defer handlePanic(c, route)

		var req ProductCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		if msg := validateProductFields(req.Name, req.Description, req.Price, req.Category, req.SpiceLevel); msg != "" {
			respondWithError(c, http.StatusBadRequest, route, msg)
			return
		}

		availability := true
		if req.Availability != nil {
			availability = *req.Availability
		}

		now := time.Now()
		product := models.Product{
			Name:            strings.TrimSpace(req.Name),
			Description:     req.Description,
			Price:           req.Price,
			Category:        models.Category(req.Category),
			Image:           req.Image,
			Availability:    availability,
			IndianSpecialty: req.IndianSpecialty,
			SpiceLevel:      models.SpiceLevel(req.SpiceLevel),
			Vegetarian:      req.Vegetarian,
			CreatedAt:       now,
			UpdatedAt:       now,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").InsertOne(ctx, product)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			product.ID = id
		}

		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE
======================= */

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		defer handlePanic(c, route)

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		set := bson.M{"updatedAt": time.Now()}

		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" || len(name) > 100 {
				respondWithError(c, http.StatusBadRequest, route, "invalid name")
				return
			}
			set["name"] = name
		}
		if req.Description != nil {
			if strings.TrimSpace(*req.Description) == "" || len(*req.Description) > 500 {
				respondWithError(c, http.StatusBadRequest, route, "invalid description")
				return
			}
			set["description"] = *req.Description
		}
		if req.Price != nil {
			if *req.Price < 0 {
				respondWithError(c, http.StatusBadRequest, route, "price cannot be negative")
				return
			}
			set["price"] = *req.Price
		}
		if req.Category != nil {
			if !models.Category(*req.Category).Valid() {
				respondWithError(c, http.StatusBadRequest, route, "unknown category")
				return
			}
			set["category"] = *req.Category
		}
		if req.Image != nil {
			set["image"] = *req.Image
		}
		if req.Availability != nil {
			set["availability"] = *req.Availability
		}
		if req.IndianSpecialty != nil {
			set["indianSpecialty"] = *req.IndianSpecialty
		}
		if req.SpiceLevel != nil {
			if *req.SpiceLevel != "" && !models.SpiceLevel(*req.SpiceLevel).Valid() {
				respondWithError(c, http.StatusBadRequest, route, "unknown spice level")
				return
			}
			set["spiceLevel"] = *req.SpiceLevel
		}
		if req.Vegetarian != nil {
			set["vegetarian"] = *req.Vegetarian
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

		var product models.Product
		err = db.Collection("products").FindOneAndUpdate(
			ctx,
			bson.M{"_id": productID},
			bson.M{"$set": set},
			opts,
		).Decode(&product)
		if err == mongo.ErrNoDocuments {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

/* =======================
   DELETE
======================= */

func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /admin/api/products/:id"

		productID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid id")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": productID})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusNotFound, route, "product not found")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}
