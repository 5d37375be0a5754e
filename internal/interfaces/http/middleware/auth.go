package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"garrison/internal/infrastructure/auth"
	"garrison/internal/shared/authorization"
	"garrison/internal/shared/constants"
	"garrison/internal/shared/logger"
	"garrison/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth validates the bearer token and stores the decoded identity on
// the request context. The token is the source of truth for the request's
// lifetime; the user record is not re-read.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAuthRequired)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAuthRequired)
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgAuthRequired)
			c.Abort()
			return
		}

		identity := claims.Identity()
		c.Set(constants.ContextKeyIdentity, identity)
		c.Set(constants.ContextKeyUserID, identity.UserID)
		c.Set(constants.ContextKeyUserRole, identity.Role.String())

		c.Next()
	}
}

// IdentityFromContext returns the identity stored by RequireAuth.
func IdentityFromContext(c *gin.Context) (authorization.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return authorization.Identity{}, false
	}
	identity, ok := value.(authorization.Identity)
	return identity, ok
}
