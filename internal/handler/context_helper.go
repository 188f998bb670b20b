package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/park-maintenance-api/internal/middleware"
	"github.com/noah-isme/park-maintenance-api/internal/models"
	appErrors "github.com/noah-isme/park-maintenance-api/pkg/errors"
)

const anonymousActor = "anonymous"

func claimsFromContext(c *gin.Context) *models.JWTClaims {
	return middleware.Claims(c)
}

// actorFromContext names the caller for audit fields; requests on an
// unauthenticated deployment are attributed to "anonymous".
func actorFromContext(c *gin.Context) string {
	if claims := claimsFromContext(c); claims != nil && claims.Subject != "" {
		return claims.Subject
	}
	return anonymousActor
}

// authorizeEmployee applies the self-service rule to names that arrive in a
// request body rather than the route. Without claims (auth disabled) every
// caller is allowed.
func authorizeEmployee(c *gin.Context, name string) error {
	claims := claimsFromContext(c)
	if claims == nil || claims.Role == models.RolePlanner {
		return nil
	}
	if strings.TrimSpace(name) == claims.Subject {
		return nil
	}
	return appErrors.Clone(appErrors.ErrForbidden, "employees may only plan their own day")
}
