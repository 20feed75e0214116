package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person roles
const (
	RoleEmployee = "employee"
	RoleHR       = "hr"
	RoleAdmin    = "admin"
)

type Person struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Name          string             `bson:"name,omitempty" json:"name,omitempty"`
	Role          string             `bson:"role" json:"role"`
	Designation   string             `bson:"designation,omitempty" json:"designation,omitempty"`
	BankAccountNo string             `bson:"bankAccountNo,omitempty" json:"bankAccountNo,omitempty"`
	Photo         string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Salary        float64            `bson:"salary,omitempty" json:"salary,omitempty"`
	IsVerified    bool               `bson:"isVerified" json:"isVerified"`
	IsFired       bool               `bson:"isFired" json:"isFired"`
	Password      string             `bson:"password,omitempty" json:"-"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
