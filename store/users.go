package store

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/suryaone68/Real-Time-Event-management/models"
)

// Users is the credential store backed by the users collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers(database *mongo.Database) *Users {
	return &Users{col: database.Collection("users")}
}

// Register creates a user with the password bcrypt-hashed before it is
// persisted. Username and email uniqueness is pre-checked with one $or query
// and backstopped by the unique indexes.
func (s *Users) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" || email == "" || password == "" {
		return nil, validationErr("All fields are required")
	}
	if len(username) < 3 || len(username) > 30 {
		return nil, validationErr("Username must be between 3 and 30 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationErr("Invalid email")
	}
	if len(password) < 6 {
		return nil, validationErr("Password must be at least 6 characters")
	}

	count, err := s.col.CountDocuments(ctx, bson.M{
		"$or": []bson.M{{"email": email}, {"username": username}},
	})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrConflict
	}

	now := time.Now()
	user := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	if _, err := s.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user matching email and password. Unknown email
// and wrong password produce the same error.
func (s *Users) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.ComparePassword(password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// FindByID loads a user by its hex id.
func (s *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
