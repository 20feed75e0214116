package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"trackforce/internal/db"
	"trackforce/internal/models"
)

type PeopleService struct {
	peoples *mongo.Collection
}

func NewPeopleService(database *mongo.Database) *PeopleService {
	return &PeopleService{peoples: database.Collection(db.PeoplesCollection)}
}

// ListByRole returns every person with the given role.
func (s *PeopleService) ListByRole(ctx context.Context, role string) ([]models.Person, error) {
	cursor, err := s.peoples.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	people := []models.Person{}
	if err := cursor.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

// ListVerified returns verified people excluding admins.
func (s *PeopleService) ListVerified(ctx context.Context) ([]models.Person, error) {
	filter := bson.M{"isVerified": true, "role": bson.M{"$ne": models.RoleAdmin}}
	cursor, err := s.peoples.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	people := []models.Person{}
	if err := cursor.All(ctx, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (s *PeopleService) GetByEmail(ctx context.Context, email string) (models.Person, error) {
	var person models.Person
	err := s.peoples.FindOne(ctx, bson.M{"email": email}).Decode(&person)
	return person, err
}

func (s *PeopleService) GetByID(ctx context.Context, id string) (models.Person, error) {
	var person models.Person
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return person, ErrInvalidID
	}
	err = s.peoples.FindOne(ctx, bson.M{"_id": objID}).Decode(&person)
	return person, err
}

// Register inserts a new person. Role defaults to employee and the password,
// when supplied, is stored as a bcrypt hash. Idempotency by email is enforced
// by the caller, which checks for an existing document first.
func (s *PeopleService) Register(ctx context.Context, person models.Person) (*mongo.InsertOneResult, error) {
	person.ID = primitive.NewObjectID()
	person.CreatedAt = time.Now()
	if person.Role == "" {
		person.Role = models.RoleEmployee
	}
	if person.Password != "" {
		hashed, err := HashPassword(person.Password)
		if err != nil {
			return nil, err
		}
		person.Password = hashed
	}
	return s.peoples.InsertOne(ctx, person)
}

// ToggleVerified flips isVerified and returns the new value. Read-then-write
// with no concurrency guard: concurrent toggles race, last write wins.
func (s *PeopleService) ToggleVerified(ctx context.Context, id string) (bool, error) {
	person, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	verified := !person.IsVerified
	update := bson.M{"$set": bson.M{"isVerified": verified}}
	if _, err := s.peoples.UpdateOne(ctx, bson.M{"_id": person.ID}, update); err != nil {
		return false, err
	}
	return verified, nil
}

// Fire unconditionally marks the person as fired.
func (s *PeopleService) Fire(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.peoples.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"isFired": true}})
}

// Promote unconditionally sets the hr role.
func (s *PeopleService) Promote(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.peoples.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"role": models.RoleHR}})
}

// SetSalary overwrites the salary field. The strictly-increasing rule is
// enforced at the route layer, which reads the current value first.
func (s *PeopleService) SetSalary(ctx context.Context, id string, salary float64) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.peoples.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"salary": salary}})
}
