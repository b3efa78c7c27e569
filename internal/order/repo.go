// Package order provides the repository interface and MongoDB implementation
// for the order ledger, including the product-enrichment read path.
package order

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrInvalidID = errors.New("invalid order id")
	ErrDelivered = errors.New("cannot cancel once the product is delivered")
)

type Repository interface {
	Create(ctx context.Context, o *Order) (string, error)
	ListByCustomer(ctx context.Context, email string) ([]EnrichedOrder, error)
	Delete(ctx context.Context, id string) error
}

type MongoRepo struct{ col *mongo.Collection }

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("orders")}
}

func (r *MongoRepo) Create(ctx context.Context, o *Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.InsertOne(ctx, o)
	if err != nil {
		return "", err
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// customerOrdersPipeline joins each of the customer's orders to its product
// and promotes the product's display fields onto the order: match by the
// nested customer email, coerce the string productId into an ObjectID, look
// the product up in the products collection, unwind the single match, copy
// name/image/category up, and drop the nested product array from the output.
func customerOrdersPipeline(email string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "customer.email", Value: email}}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "productId", Value: bson.D{{Key: "$toObjectId", Value: "$productId"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "products"},
			{Key: "localField", Value: "productId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "products"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$products"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "name", Value: "$products.productName"},
			{Key: "image", Value: "$products.image"},
			{Key: "category", Value: "$products.category"},
		}}},
		{{Key: "$project", Value: bson.D{{Key: "products", Value: 0}}}},
	}
}

func (r *MongoRepo) ListByCustomer(ctx context.Context, email string) ([]EnrichedOrder, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, customerOrdersPipeline(email))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []EnrichedOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete cancels an order unless it has already been delivered. A missing
// order is reported as such rather than treated as a successful cancel.
func (r *MongoRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	var o Order
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if o.Status == StatusDelivered {
		return ErrDelivered
	}
	_, err = r.col.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
