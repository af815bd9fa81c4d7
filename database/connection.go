package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jjblog/config"
)

// InitDB connects to MongoDB and guarantees the unique slug index on the
// article collection before any handler runs.
func InitDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uri := "mongodb://" + cfg.Database.DBHost + ":" + cfg.Database.DBPort + "/"
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}
	if err := client.Ping(ctx, nil); err != nil {
		panic("failed to ping database: " + err.Error())
	}

	db := client.Database(cfg.Database.DBName)

	_, err = db.Collection("article").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		panic("failed to create slug index: " + err.Error())
	}

	return db
}
