package db

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect opens a client and verifies the connection with a ping.
func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to mongodb")
	return client, nil
}

// EnsureIndexes creates the indexes the stores rely on: unique username and
// email on users, a text index on event titles for search, and a compound
// type+date index for filtered listings.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	users := database.Collection("users")
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	events := database.Collection("events")
	_, err = events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "title", Value: "text"}},
		},
		{
			Keys: bson.D{{Key: "type", Value: 1}, {Key: "date", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: 1}},
		},
	})
	return err
}
