package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/ordersync"
	pkgAuth "github.com/quickserve/quickserve/internal/pkg/auth"
	"github.com/quickserve/quickserve/internal/server/http/middleware"
	"github.com/quickserve/quickserve/internal/usecase"
)

// CurrentClaims extracts the authenticated claims from the gin context.
func CurrentClaims(c *gin.Context) pkgAuth.Claims {
	val, ok := c.Get(middleware.ClaimsContextKey)
	if !ok {
		return pkgAuth.Claims{}
	}
	claims, _ := val.(pkgAuth.Claims)
	return claims
}

func actorFrom(claims pkgAuth.Claims) usecase.Actor {
	return usecase.Actor{
		UserID:       claims.UserID,
		Role:         model.Role(claims.Role),
		RestaurantID: claims.RestaurantID,
	}
}

func profileFrom(claims pkgAuth.Claims) ordersync.Profile {
	return ordersync.Profile{
		UserID:       claims.UserID,
		CustomerID:   claims.CustomerID,
		Role:         model.Role(claims.Role),
		RestaurantID: claims.RestaurantID,
		Hub:          claims.Hub,
	}
}

// statusFromError maps domain errors to HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrKitchenOffline),
		errors.Is(err, domainErrors.ErrItemUnavailable),
		errors.Is(err, domainErrors.ErrVendorDisabled),
		errors.Is(err, domainErrors.ErrAreaInactive),
		errors.Is(err, domainErrors.ErrTotalMismatch):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrEmptyCart),
		errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidMenuItem),
		errors.Is(err, domainErrors.ErrReasonRequired),
		errors.Is(err, domainErrors.ErrInvalidArea):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFromError(err), gin.H{"error": err.Error()})
}
