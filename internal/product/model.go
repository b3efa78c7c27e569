package product

import "go.mongodb.org/mongo-driver/bson/primitive"

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ProductName string             `bson:"productName" json:"productName"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	// We store price as a string to avoid rounding errors; creation
	// validates it parses as a decimal.
	Price       string `bson:"price,omitempty" json:"price,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Seller      string `bson:"seller,omitempty" json:"seller,omitempty"`
}

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: not found
	Message string `json:"message"`
}

// AdjustQuantityRequest payload of the stock adjustment.
// swagger:model AdjustQuantityRequest
type AdjustQuantityRequest struct {
	QuantityToUpdate int    `json:"quantityToUpdate" example:"5"`
	Status           string `json:"status" example:"increase"`
}
