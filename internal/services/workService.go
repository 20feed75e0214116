package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trackforce/internal/db"
	"trackforce/internal/models"
)

type WorkService struct {
	works *mongo.Collection
}

func NewWorkService(database *mongo.Database) *WorkService {
	return &WorkService{works: database.Collection(db.WorksCollection)}
}

// List returns work entries sorted by date descending, optionally filtered by
// the submitter's email.
func (s *WorkService) List(ctx context.Context, email string) ([]models.Work, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.works.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	works := []models.Work{}
	if err := cursor.All(ctx, &works); err != nil {
		return nil, err
	}
	return works, nil
}

func (s *WorkService) Get(ctx context.Context, id string) (models.Work, error) {
	var work models.Work
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return work, ErrInvalidID
	}
	err = s.works.FindOne(ctx, bson.M{"_id": objID}).Decode(&work)
	return work, err
}

// Create stamps createdAt server-side and inserts the entry.
func (s *WorkService) Create(ctx context.Context, work models.Work) (*mongo.InsertOneResult, error) {
	work.ID = primitive.NewObjectID()
	work.CreatedAt = time.Now()
	return s.works.InsertOne(ctx, work)
}

// Update applies a field-set patch: only the supplied fields are overwritten.
func (s *WorkService) Update(ctx context.Context, id string, patch bson.M) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.works.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": patch})
}

func (s *WorkService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.works.DeleteOne(ctx, bson.M{"_id": objID})
}
