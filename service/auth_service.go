package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"jjblog/config"
	"jjblog/models"
)

type AuthService interface {
	CheckPassword(user *models.User, rawPassword string) bool
	IssueSession(userID primitive.ObjectID) (string, error)
	ResolveSession(token string) (primitive.ObjectID, error)
}

type AuthServiceImpl struct {
	secret        []byte
	expireMinutes int
}

func NewAuthService(cfg *config.SessionConfig) AuthService {
	return &AuthServiceImpl{
		secret:        []byte(cfg.CookieSecret),
		expireMinutes: cfg.ExpireMinutes,
	}
}

// CheckPassword compares the stored bcrypt hash against the submitted
// password. Any mismatch or malformed stored hash counts as a failure.
func (s *AuthServiceImpl) CheckPassword(user *models.User, rawPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(rawPassword)) == nil
}

// IssueSession mints the signed cookie value: an HS256 token whose subject
// is the user's ObjectID hex.
func (s *AuthServiceImpl) IssueSession(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expireMinutes) * time.Minute)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ResolveSession verifies a cookie value and returns the user id it names.
// Callers treat any error as an anonymous request.
func (s *AuthServiceImpl) ResolveSession(token string) (primitive.ObjectID, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return primitive.NilObjectID, errors.New("invalid session token")
	}
	return primitive.ObjectIDFromHex(claims.Subject)
}
