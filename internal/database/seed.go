package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/models"
)

const (
	seedAdminEmail    = "admin@spicehaven.com"
	seedAdminPassword = "admin123"
)

func seedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			Name:         "Chicken Biryani",
			Description:  "Aromatic basmati rice layered with tender chicken, saffron, and traditional spices",
			Price:        350,
			Category:     models.CategoryMainCourse,
			Image:        "/images/food/biryani.png",
			SpiceLevel:   models.SpiceMedium,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Butter Chicken",
			Description:  "Creamy tomato-based curry with tender chicken pieces and aromatic spices",
			Price:        380,
			Category:     models.CategoryMainCourse,
			Image:        "/images/food/butter-chicken.png",
			SpiceLevel:   models.SpiceMild,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Samosa Platter",
			Description:  "Crispy pastry filled with spiced potatoes and peas, served with chutneys",
			Price:        150,
			Category:     models.CategoryAppetizers,
			Image:        "/images/food/samosa.png",
			SpiceLevel:   models.SpiceMedium,
			Vegetarian:   true,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Tandoori Platter",
			Description:  "Mixed grill featuring tandoori chicken, seekh kebabs, and paneer tikka",
			Price:        450,
			Category:     models.CategoryAppetizers,
			Image:        "/images/food/tandoori.png",
			SpiceLevel:   models.SpiceHot,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Gulab Jamun",
			Description:  "Soft milk dumplings soaked in rose-flavored sugar syrup",
			Price:        120,
			Category:     models.CategoryDesserts,
			Image:        "/images/food/gulab-jamun.png",
			Vegetarian:   true,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Masala Chai",
			Description:  "Traditional Indian spiced tea with aromatic herbs and spices",
			Price:        60,
			Category:     models.CategoryBeverages,
			Image:        "/images/food/masala-chai.png",
			Vegetarian:   true,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			Name:         "Traditional Thali",
			Description:  "Complete meal with dal, vegetables, rice, roti, raita, and dessert",
			Price:        420,
			Category:     models.CategoryMainCourse,
			Image:        "/images/food/thali.png",
			SpiceLevel:   models.SpiceMedium,
			Vegetarian:   true,
			Availability: true,
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
}

// Seed wipes the products and admins collections and loads the default menu
// plus the default admin account.
func Seed(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := db.Collection("products").DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := db.Collection("admins").DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}

	products := seedProducts()
	docs := make([]interface{}, 0, len(products))
	for _, p := range products {
		docs = append(docs, p)
	}
	if _, err := db.Collection("products").InsertMany(ctx, docs); err != nil {
		return err
	}
	log.Printf("Seed: created %d products", len(products))

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := models.Admin{
		Email:        seedAdminEmail,
		PasswordHash: string(hash),
		Name:         "Admin User",
		Role:         "admin",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := db.Collection("admins").InsertOne(ctx, admin); err != nil {
		return err
	}
	log.Println("Seed: created admin user:", admin.Email)

	return nil
}
