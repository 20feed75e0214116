package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"trackforce/internal/db"
	"trackforce/internal/models"
)

type AuthService struct {
	peoples *mongo.Collection
	secret  string
	ttl     time.Duration
}

func NewAuthService(database *mongo.Database, secret string, ttlHours int) *AuthService {
	return &AuthService{
		peoples: database.Collection(db.PeoplesCollection),
		secret:  secret,
		ttl:     time.Duration(ttlHours) * time.Hour,
	}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT signs a token carrying the person's id, email and role.
func (s *AuthService) GenerateJWT(userID, email, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    role,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Login authenticates a person by email and password and returns a signed
// token along with the role. Fired people are locked out.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	var person models.Person
	if err := s.peoples.FindOne(ctx, bson.M{"email": email}).Decode(&person); err != nil {
		return "", "", errors.New("invalid credentials")
	}

	if person.Password == "" || !VerifyPassword(password, person.Password) {
		return "", "", errors.New("invalid credentials")
	}
	if person.IsFired {
		return "", "", errors.New("account disabled")
	}

	token, err := s.GenerateJWT(person.ID.Hex(), person.Email, person.Role)
	if err != nil {
		return "", "", err
	}
	return token, person.Role, nil
}
