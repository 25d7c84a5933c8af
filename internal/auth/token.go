package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ayush/pet-qa-forum/internal/apperr"
	"github.com/ayush/pet-qa-forum/internal/models"
)

// Identity is the decoded token payload attached to authenticated requests.
type Identity struct {
	UserID   primitive.ObjectID
	Username string
}

type claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// IssueToken mints a signed HS256 bearer token for the user, valid for
// the configured TTL.
func (s *Service) IssueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.Hex(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		Username: u.Username,
	})
	return token.SignedString(s.secret)
}

// VerifyToken validates a bearer token and returns the identity embedded
// in it. Malformed, forged and expired tokens all fail the same way.
func (s *Service) VerifyToken(tokenString string) (*Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.Auth("Invalid or expired token")
	}
	userID, err := primitive.ObjectIDFromHex(c.Subject)
	if err != nil {
		return nil, apperr.Auth("Invalid or expired token")
	}
	return &Identity{UserID: userID, Username: c.Username}, nil
}
