package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment lifecycle states
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EmployeeID    string             `bson:"employeeId,omitempty" json:"employeeId,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Year          int                `bson:"year" json:"year"`
	Month         int                `bson:"month" json:"month"`
	Salary        float64            `bson:"salary" json:"salary"`
	Status        string             `bson:"status" json:"status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	PaymentDate   time.Time          `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
