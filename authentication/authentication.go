package authentication

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Tokens are issued by the external identity service; this package only
// verifies them and injects the caller's identity into the request context.

type PatientClaims struct {
	PatientID string `json:"patient_id"`
	jwt.RegisteredClaims
}

type ProviderClaims struct {
	ProviderID string `json:"provider_id"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("secretKey")
}

// verify patient token
func AuthenticatePatient(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &PatientClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := token.Claims.(*PatientClaims); ok && token.Valid {
		return claims.PatientID, nil
	}
	return "", errors.New("invalid token")
}

// verify provider token
func AuthenticateProvider(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ProviderClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := token.Claims.(*ProviderClaims); ok && token.Valid {
		return claims.ProviderID, nil
	}
	return "", errors.New("invalid token")
}

// Patient auth middleware
func PatientAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing the authorization header"})
			return
		}

		authHeader := strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))

		patientID, err := AuthenticatePatient(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("patient_id", patientID)
		c.Next()
	}
}

// Provider auth middleware
func ProviderAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing the authorization header"})
			return
		}

		authHeader := strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer"))

		providerID, err := AuthenticateProvider(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("provider_id", providerID)
		c.Next()
	}
}
