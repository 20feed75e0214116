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

type PaymentService struct {
	payments *mongo.Collection
}

func NewPaymentService(database *mongo.Database) *PaymentService {
	return &PaymentService{payments: database.Collection(db.PaymentsCollection)}
}

var historySort = options.Find().SetSort(bson.D{{Key: "year", Value: 1}, {Key: "month", Value: 1}})

// ListAll returns every payment request, for the HR-facing view.
func (s *PaymentService) ListAll(ctx context.Context) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (models.Payment, error) {
	var payment models.Payment
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return payment, ErrInvalidID
	}
	err = s.payments.FindOne(ctx, bson.M{"_id": objID}).Decode(&payment)
	return payment, err
}

// HistoryByEmail returns all payments for an email, sorted by year then month
// ascending.
func (s *PaymentService) HistoryByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.history(ctx, bson.M{"email": email})
}

// HistoryFor matches payments by employee id, email, or either when both are
// given. Payments carry no referential link to the person document, so both
// keys are tried.
func (s *PaymentService) HistoryFor(ctx context.Context, employeeID, email string) ([]models.Payment, error) {
	conditions := bson.A{}
	if employeeID != "" {
		conditions = append(conditions, bson.M{"employeeId": employeeID})
	}
	if email != "" {
		conditions = append(conditions, bson.M{"email": email})
	}
	if len(conditions) == 0 {
		return []models.Payment{}, nil
	}
	return s.history(ctx, bson.M{"$or": conditions})
}

func (s *PaymentService) history(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	cursor, err := s.payments.Find(ctx, filter, historySort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Create stamps createdAt, defaults the status to pending and inserts.
func (s *PaymentService) Create(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	payment.ID = primitive.NewObjectID()
	payment.CreatedAt = time.Now()
	if payment.Status == "" {
		payment.Status = models.PaymentPending
	}
	return s.payments.InsertOne(ctx, payment)
}

// MarkPaid transitions the payment to paid, storing the supplied transaction
// id and stamping paymentDate. Concurrent marks race, last write wins.
func (s *PaymentService) MarkPaid(ctx context.Context, id, transactionID string) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	update := bson.M{"$set": bson.M{
		"status":        models.PaymentPaid,
		"transactionId": transactionID,
		"paymentDate":   time.Now(),
	}}
	return s.payments.UpdateOne(ctx, bson.M{"_id": objID}, update)
}
