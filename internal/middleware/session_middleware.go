package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "timers/internal/errors"
	"timers/internal/logging"
	"timers/internal/model"
	"timers/internal/service"
)

const (
	SessionQueryParam  = "sessionId"
	identityContextKey = "identity"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*service.Identity, error)
}

// Session resolves the sessionId query parameter into an identity. Requests
// without a token, or with a token that resolves to nobody, continue
// unauthenticated; handlers decide whether that is acceptable.
func Session(auth Authenticator, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query(SessionQueryParam)
		if token == "" {
			c.Next()
			return
		}

		identity, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Error(c.Request.Context(), "resolve session", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": apperrors.Internal("failed to resolve session"),
			})
			return
		}
		if identity != nil {
			c.Set(identityContextKey, identity)
		}
		c.Next()
	}
}

func CurrentIdentity(c *gin.Context) *service.Identity {
	value, ok := c.Get(identityContextKey)
	if !ok {
		return nil
	}
	identity, ok := value.(*service.Identity)
	if !ok {
		return nil
	}
	return identity
}

func CurrentUser(c *gin.Context) *model.User {
	identity := CurrentIdentity(c)
	if identity == nil {
		return nil
	}
	return identity.User
}
