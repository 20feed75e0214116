package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/db"
	"trackforce/internal/models"
)

type ReviewService struct {
	reviews *mongo.Collection
}

func NewReviewService(database *mongo.Database) *ReviewService {
	return &ReviewService{reviews: database.Collection(db.ReviewsCollection)}
}

// Create inserts a review. Write-only surface, there is no read path.
func (s *ReviewService) Create(ctx context.Context, review models.Review) (*mongo.InsertOneResult, error) {
	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now()
	return s.reviews.InsertOne(ctx, review)
}
