package auth

import (
	"errors"
	"student-dashboard/app/session"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "student-dashboard"

// PasswordCost is the bcrypt work factor for newly hashed passwords.
var PasswordCost = 12

var ErrInvalidToken = errors.New("invalid token")

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// JWTClaims ties a browser to a server-side session. The profile fields are
// informational; the session record stays authoritative.
type JWTClaims struct {
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateJWT(secret []byte, sess *session.Session) (string, error) {
	claims := JWTClaims{
		SessionID: sess.ID,
		UserID:    sess.Profile.ID,
		Email:     sess.Profile.Email,
		Name:      sess.Profile.Name,
		Role:      string(sess.Profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.Profile.ID,
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(sess.CreatedAt),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateJWT(secret []byte, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// sessionExpiry bounds the cookie lifetime by the session record.
func sessionExpiry(sess *session.Session) time.Time {
	if sess.ExpiresAt.IsZero() {
		return time.Now().Add(24 * time.Hour)
	}
	return sess.ExpiresAt
}
