package auth

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret string
	tokenTTL  = 24 * time.Hour
)

// Token validation failures. Handlers collapse all of these into the
// same 401 response; the distinction exists for logs and tests only.
var (
	ErrTokenMissing   = errors.New("token missing")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
)

// InitJWTSecret loads the signing key and token lifetime from the
// environment. Called once at startup; the values are never mutated
// afterwards, so token calls need no locking.
func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	if ttl := os.Getenv("TOKEN_TTL"); ttl != "" {
		parsed, err := time.ParseDuration(ttl)
		if err != nil || parsed <= 0 {
			return fmt.Errorf("TOKEN_TTL is not a valid duration: %q", ttl)
		}
		tokenTTL = parsed
	}

	return nil
}

func GenerateJWT(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"exp": time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// VerifyJWT returns the subject user id of a valid token, or one of the
// ErrToken* sentinels.
func VerifyJWT(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, ErrTokenMissing
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenMalformed
	}

	if !token.Valid {
		return 0, ErrTokenMalformed
	}

	subject, err := token.Claims.GetSubject()

	if err != nil || subject == "" {
		return 0, ErrTokenMalformed
	}

	userID, err := strconv.ParseUint(subject, 10, 64)

	if err != nil {
		return 0, ErrTokenMalformed
	}

	return uint(userID), nil
}
