package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickserve/quickserve/internal/server/http/dto"
)

// RestaurantHandler serves storefront visibility and profile management.
type RestaurantHandler struct {
	facade RestaurantFacade
}

// NewRestaurantHandler creates RestaurantHandler instance.
func NewRestaurantHandler(facade RestaurantFacade) *RestaurantHandler {
	return &RestaurantHandler{facade: facade}
}

// Get handles GET /api/vendor/restaurant.
func (h *RestaurantHandler) Get(c *gin.Context) {
	claims := CurrentClaims(c)
	restaurant, err := h.facade.Restaurant(c.Request.Context(), claims.RestaurantID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// SetOnline handles POST /api/vendor/restaurant/online.
func (h *RestaurantHandler) SetOnline(c *gin.Context) {
	var req dto.OnlineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	claims := CurrentClaims(c)
	if err := h.facade.SetRestaurantOnline(c.Request.Context(), actorFrom(claims), claims.RestaurantID, req.Online); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// UpdateProfile handles PUT /api/vendor/restaurant/profile.
func (h *RestaurantHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	claims := CurrentClaims(c)
	if err := h.facade.UpdateRestaurantProfile(c.Request.Context(), actorFrom(claims), claims.RestaurantID, req.Name, req.LogoURL); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListAll handles GET /api/admin/restaurants.
func (h *RestaurantHandler) ListAll(c *gin.Context) {
	restaurants, err := h.facade.ListAllRestaurants(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}
