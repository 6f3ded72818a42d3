package utils

import (
	"cgpa-calculator/models"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "cgpa-calculator"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenMissing = errors.New("Authorization header missing")
)

func RespondWithError(w http.ResponseWriter, status int, error models.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(error)
}

func ResponseJSON(w http.ResponseWriter, data interface{}) {
	ResponseJSONStatus(w, http.StatusOK, data)
}

// ResponseJSONStatus encodes data before writing anything, so a value that
// cannot be encoded becomes a 500 instead of an empty body.
func ResponseJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Failed to encode response"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(body, '\n'))
}

// GenerateToken signs a session token that addresses one workspace.
func GenerateToken(workspaceID, secret string, expiration time.Duration) (models.JWT, error) {
	if secret == "" {
		return models.JWT{}, errors.New("SECRET environment variable is not set")
	}
	if workspaceID == "" {
		return models.JWT{}, errors.New("workspace id is required")
	}

	now := time.Now()
	expiresAt := now.Add(expiration)
	claims := jwt.MapClaims{
		"iss":          tokenIssuer,
		"workspace_id": workspaceID,
		"exp":          expiresAt.Unix(),
		"iat":          now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return models.JWT{}, err
	}
	return models.JWT{Token: tokenString, ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC()}, nil
}

// ParseToken verifies tokenString and returns the workspace it addresses.
func ParseToken(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", errors.New("SECRET environment variable is not set")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", err
	}
	if !token.Valid {
		return "", errors.New("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("Invalid token claims")
	}
	if !claims.VerifyIssuer(tokenIssuer, true) {
		return "", errors.New("Invalid token issuer")
	}
	workspaceID, ok := claims["workspace_id"].(string)
	if !ok || workspaceID == "" {
		return "", errors.New("workspace_id not found in token")
	}
	return workspaceID, nil
}

// TokenFromRequest reads a bearer token from the Authorization header, or
// from the token query parameter for clients that cannot set headers.
func TokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if token := r.URL.Query().Get("token"); token != "" {
			return token, nil
		}
		return "", ErrTokenMissing
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("Invalid Authorization header format")
	}
	return parts[1], nil
}
