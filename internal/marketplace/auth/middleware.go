package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

// ContextUserKey is the gin context key under which the authenticated
// user is stored.
const ContextUserKey = "current_user"

// UserLoader resolves a token subject to a full account. The db layer
// satisfies it.
type UserLoader interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// Middleware validates the bearer token and loads the account into the
// request context. Requests without a valid token are rejected with 401.
func Middleware(secret string, loader UserLoader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "authorization header format must be Bearer {token}"})
			return
		}

		userID, err := ParseToken(parts[1], secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "invalid or expired token"})
			return
		}

		user, err := loader.GetUser(ctx.Request.Context(), userID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "user not found"})
			return
		}
		if !user.IsActive {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "account is inactive"})
			return
		}

		ctx.Set(ContextUserKey, user)
		ctx.Next()
	}
}

// CurrentUser returns the account placed in the context by Middleware.
func CurrentUser(ctx *gin.Context) (*models.User, bool) {
	value, exists := ctx.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}
