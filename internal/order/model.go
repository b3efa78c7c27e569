package order

import "go.mongodb.org/mongo-driver/bson/primitive"

const StatusDelivered = "delivered"

type Customer struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
}

type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Customer Customer           `bson:"customer" json:"customer"`
	// ProductID is stored as a string and coerced to an ObjectID inside
	// the enrichment pipeline.
	ProductID string `bson:"productId" json:"productId"`
	Price     string `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  int    `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Address   string `bson:"address,omitempty" json:"address,omitempty"`
	Status    string `bson:"status" json:"status"`
}

// EnrichedOrder is an order with the referenced product's display fields
// promoted onto it. The pipeline converts productId to an ObjectID before
// the lookup, so it decodes as one here. An order whose productId does not
// resolve keeps its own fields and the enrichment fields stay empty.
type EnrichedOrder struct {
	ID        primitive.ObjectID `bson:"_id" json:"_id"`
	Customer  Customer           `bson:"customer" json:"customer"`
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Price     string             `bson:"price,omitempty" json:"price,omitempty"`
	Quantity  int                `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Category  string             `bson:"category,omitempty" json:"category,omitempty"`
}
