package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jjblog/models"
)

type ArticleRepository interface {
	List(ctx context.Context) ([]models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	// Upsert replaces the article stored under its slug, inserting a new
	// document when the slug is unseen. Last write wins.
	Upsert(ctx context.Context, article *models.Article) error
}

type ArticleRepositoryImpl struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) ArticleRepository {
	return &ArticleRepositoryImpl{coll: db.Collection("article")}
}

func (r *ArticleRepositoryImpl) List(ctx context.Context) ([]models.Article, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var articles []models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *ArticleRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&article)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoResult
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) Upsert(ctx context.Context, article *models.Article) error {
	update := bson.M{"$set": bson.M{
		"slug":     article.Slug,
		"title":    article.Title,
		"markdown": article.Markdown,
	}}
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"slug": article.Slug}, update,
		options.FindOneAndUpdate().SetUpsert(true)).Err()
	// ErrNoDocuments here means the upsert inserted a fresh document
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}
	return nil
}
