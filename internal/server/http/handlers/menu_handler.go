package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickserve/quickserve/internal/domain/model"
)

// MenuHandler serves menu management for vendors and menu browsing for
// customers.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler creates MenuHandler instance.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// Create handles POST /api/vendor/menu.
func (h *MenuHandler) Create(c *gin.Context) {
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	claims := CurrentClaims(c)
	if item.RestaurantID == 0 {
		item.RestaurantID = claims.RestaurantID
	}
	created, err := h.facade.CreateMenuItem(c.Request.Context(), actorFrom(claims), item)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /api/vendor/menu/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var item model.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	item.ID = itemID

	if err := h.facade.UpdateMenuItem(c.Request.Context(), actorFrom(CurrentClaims(c)), item); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// Archive handles DELETE /api/vendor/menu/:id.
func (h *MenuHandler) Archive(c *gin.Context) {
	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.ArchiveMenuItem(c.Request.Context(), actorFrom(CurrentClaims(c)), itemID); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VendorList handles GET /api/vendor/menu: the vendor's full menu,
// archived items included.
func (h *MenuHandler) VendorList(c *gin.Context) {
	claims := CurrentClaims(c)
	items, err := h.facade.VendorMenu(c.Request.Context(), actorFrom(claims), claims.RestaurantID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CustomerList handles GET /api/restaurants/:id/menu: only orderable items.
func (h *MenuHandler) CustomerList(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	items, err := h.facade.CustomerMenu(c.Request.Context(), restaurantID)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
