package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VigneshBabu18/InternalKnowledgeBaseportal/internal/models"
)

// CreateToken issues an HS256 JWT carrying the caller identity. The admin is
// a virtual account with user_id 0, provisioned from the environment rather
// than the users table.
func CreateToken(userID uint, email string, role models.Role) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"role":    string(role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	return token.SignedString(jwtSecret)
}
