package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/selin-bardakci/waveriders/internal/entities"
)

// Context keys for the authenticated identity
const (
	ContextKeyUserID      = "auth_user_id"
	ContextKeyEmail       = "auth_email"
	ContextKeyAccountType = "auth_account_type"
)

// Middleware validates bearer tokens and attaches the decoded identity
// to the request context.
type Middleware struct {
	tokens *TokenManager
}

func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handler rejects requests without a token with 401 and requests with an
// invalid or expired token with 403.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Access denied. No token provided.",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Access denied. Token not provided.",
			})
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeyAccountType, claims.AccountType)
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 when the request is unauthenticated.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetEmail retrieves the authenticated user's email from the context.
func GetEmail(c *gin.Context) string {
	if e, exists := c.Get(ContextKeyEmail); exists {
		if email, ok := e.(string); ok {
			return email
		}
	}
	return ""
}

// GetAccountType retrieves the authenticated account type from the context.
func GetAccountType(c *gin.Context) entities.AccountType {
	if t, exists := c.Get(ContextKeyAccountType); exists {
		if accountType, ok := t.(entities.AccountType); ok {
			return accountType
		}
	}
	return ""
}
