package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the fixed menu section a product belongs to.
type Category string

const (
	CategoryAppetizers Category = "appetizers"
	CategoryMainCourse Category = "main-course"
	CategoryDesserts   Category = "desserts"
	CategoryBeverages  Category = "beverages"
	CategoryRooms      Category = "rooms"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryAppetizers, CategoryMainCourse, CategoryDesserts, CategoryBeverages, CategoryRooms:
		return true
	}
	return false
}

// SpiceLevel is optional; the zero value means unspecified.
type SpiceLevel string

const (
	SpiceMild     SpiceLevel = "mild"
	SpiceMedium   SpiceLevel = "medium"
	SpiceHot      SpiceLevel = "hot"
	SpiceExtraHot SpiceLevel = "extra-hot"
)

func (s SpiceLevel) Valid() bool {
	switch s {
	case SpiceMild, SpiceMedium, SpiceHot, SpiceExtraHot:
		return true
	}
	return false
}

type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Description     string             `bson:"description" json:"description"`
	Price           float64            `bson:"price" json:"price"`
	Category        Category           `bson:"category" json:"category"`
	Image           string             `bson:"image" json:"image"`
	Availability    bool               `bson:"availability" json:"availability"`
	IndianSpecialty bool               `bson:"indianSpecialty" json:"indianSpecialty"`
	SpiceLevel      SpiceLevel         `bson:"spiceLevel,omitempty" json:"spiceLevel,omitempty"`
	Vegetarian      bool               `bson:"vegetarian" json:"vegetarian"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}
