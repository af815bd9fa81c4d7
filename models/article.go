package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Article holds the raw markdown source; rendering happens at view time.
// Slug is the upsert key and carries a unique index.
type Article struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Slug     string             `bson:"slug"`
	Title    string             `bson:"title"`
	Markdown string             `bson:"markdown"`
}
