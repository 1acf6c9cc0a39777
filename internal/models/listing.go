package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing is a donated medicine stored in MongoDB. MedicineName doubles as the
// lookup key for search, request and delete; it is not unique.
type Listing struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	MedicineName string             `json:"medicinename" bson:"medicinename"`
	ExpiryDate   time.Time          `json:"exp_date" bson:"exp_date"`
	Address      string             `json:"address" bson:"address"`
	Phone        string             `json:"phone" bson:"phone"`
	Photo        string             `json:"photo" bson:"photo"`
	Description  string             `json:"description" bson:"description"`
	DonorID      uint               `json:"donor_id" bson:"donor_id"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

// DonateRequest is the body of POST /donate.
type DonateRequest struct {
	MedicineName string `json:"medicinename" validate:"required,max=200"`
	ExpiryDate   string `json:"exp_date" validate:"required"`
	Address      string `json:"address" validate:"required,max=255"`
	Phone        string `json:"phone" validate:"required,max=32"`
	Photo        string `json:"photo" validate:"required"`
	Description  string `json:"description" validate:"required,max=2000"`
}

// HomeListing is a listing with its donor resolved for the home feed.
type HomeListing struct {
	DonorID      string    `json:"donorId"`
	DonorName    string    `json:"donorName"`
	MedicineName string    `json:"medicinename"`
	ExpiryDate   time.Time `json:"exp_date"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Photo        string    `json:"photo"`
	Description  string    `json:"description"`
}
