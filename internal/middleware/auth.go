package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/viciniti/service-scheduler/internal/config"
)

// A emissão de tokens é de um serviço externo; aqui só validamos e
// extraímos a identidade.
const (
	ContextUserID     = "userID"
	ContextProviderID = "providerID"
	ContextUserType   = "userType"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		userType, _ := claims["userType"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextUserType, userType)

		// providerId só existe em tokens de prestador.
		if providerID, ok := claims["providerId"].(float64); ok {
			c.Set(ContextProviderID, uint(providerID))
		}

		c.Next()
	}
}

// OptionalAuth popula a identidade quando um token válido vem no header,
// mas deixa a requisição seguir anônima quando não vem. Usado no fluxo de
// agendamento de convidados.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if userID, ok := claims["sub"].(float64); ok {
				c.Set(ContextUserID, uint(userID))
			}
			if userType, ok := claims["userType"].(string); ok {
				c.Set(ContextUserType, userType)
			}
			if providerID, ok := claims["providerId"].(float64); ok {
				c.Set(ContextProviderID, uint(providerID))
			}
		}

		c.Next()
	}
}

// RequireProvider garante que a rota só é acessada por tokens de prestador.
func RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextProviderID); !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "provider_only"})
			return
		}
		c.Next()
	}
}
