package user

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleCustomer = "customer"

	// StatusRequested marks a user who asked for a role upgrade and is
	// waiting for review. A user starts with no status at all.
	StatusRequested = "Requested"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role" json:"role"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
}
