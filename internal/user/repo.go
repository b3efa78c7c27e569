package user

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound         = errors.New("user not found")
	ErrAlreadyRequested = errors.New("status change already requested")
)

type Repository interface {
	// Upsert returns the existing record untouched when the email is
	// already registered, otherwise inserts u and reports created=true.
	Upsert(ctx context.Context, email string, u *User) (*User, bool, error)
	RequestStatusChange(ctx context.Context, email string) error
}

type MongoRepo struct{ col *mongo.Collection }

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("users")}
}

func (r *MongoRepo) Upsert(ctx context.Context, email string, u *User) (*User, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var existing User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	u.Email = email
	u.Role = RoleCustomer
	u.Timestamp = time.Now().UnixMilli()
	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return nil, false, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid
	}
	return u, true, nil
}

func (r *MongoRepo) RequestStatusChange(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var u User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if u.Status == StatusRequested {
		return ErrAlreadyRequested
	}
	_, err = r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"status": StatusRequested}},
	)
	return err
}
