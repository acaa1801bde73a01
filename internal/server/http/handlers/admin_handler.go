package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/server/http/dto"
)

// AdminHandler serves hub and vendor administration.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// ListVendors handles GET /api/admin/vendors.
func (h *AdminHandler) ListVendors(c *gin.Context) {
	vendors, err := h.facade.ListVendors(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// SetVendorActive handles POST /api/admin/vendors/:id/active.
func (h *AdminHandler) SetVendorActive(c *gin.Context) {
	vendorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.SetVendorActive(c.Request.Context(), vendorID, req.Active); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ListAreas handles GET /api/admin/areas.
func (h *AdminHandler) ListAreas(c *gin.Context) {
	areas, err := h.facade.ListAreas(c.Request.Context(), false)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

// CreateArea handles POST /api/admin/areas.
func (h *AdminHandler) CreateArea(c *gin.Context) {
	var req dto.AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	area, err := h.facade.CreateArea(c.Request.Context(), model.Area{
		Name:        req.Name,
		City:        req.City,
		State:       req.State,
		Code:        req.Code,
		Active:      true,
		MultiVendor: req.MultiVendor,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

// UpdateArea handles PUT /api/admin/areas/:id.
func (h *AdminHandler) UpdateArea(c *gin.Context) {
	areaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.AreaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	err = h.facade.UpdateArea(c.Request.Context(), model.Area{
		ID:          areaID,
		Name:        req.Name,
		City:        req.City,
		State:       req.State,
		Code:        req.Code,
		MultiVendor: req.MultiVendor,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// SetAreaActive handles POST /api/admin/areas/:id/active.
func (h *AdminHandler) SetAreaActive(c *gin.Context) {
	areaID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	var req dto.ActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if err := h.facade.SetAreaActive(c.Request.Context(), areaID, req.Active); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
