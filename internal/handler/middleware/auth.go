package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"parking-settlement/internal/domain/operator"
	"parking-settlement/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxIdentityKey = "operator_identity"
	ctxClaimsKey   = "jwt_claims"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts operator bearer tokens issued by the account service.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		SetIdentity(c, identity)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole operator.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !identity.Role.AtLeast(minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// SetIdentity stores the authenticated operator on the context. Tests use it to stub auth.
func SetIdentity(c *gin.Context, identity *usecase.OperatorIdentity) {
	c.Set(ctxIdentityKey, identity)
	c.Set(ctxClaimsKey, map[string]any{
		"operator_id":      identity.OperatorID.String(),
		"establishment_id": identity.EstablishmentID.String(),
		"role":             identity.Role.String(),
	})
}

func GetIdentity(c *gin.Context) (*usecase.OperatorIdentity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*usecase.OperatorIdentity)
	return identity, ok && identity != nil
}

func GetOperatorID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.OperatorID, true
}
