package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Work struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Task      string             `bson:"task,omitempty" json:"task,omitempty"`
	Hours     float64            `bson:"hours,omitempty" json:"hours,omitempty"`
	Date      time.Time          `bson:"date" json:"date"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
