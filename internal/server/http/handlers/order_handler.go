package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quickserve/quickserve/internal/domain/model"
	"github.com/quickserve/quickserve/internal/server/http/dto"
)

// OrderHandler serves checkout and the order board. Listings and status
// changes go through the caller's sync session, so reads hit the in-memory
// cache and writes stay optimistic.
type OrderHandler struct {
	facade  OrderFacade
	manager SyncManager
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade, manager SyncManager) *OrderHandler {
	return &OrderHandler{facade: facade, manager: manager}
}

// Checkout handles POST /api/orders.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	claims := CurrentClaims(c)
	orders, err := h.facade.Checkout(c.Request.Context(), claims.CustomerID, claims.Hub, claims.Table, req.Items, req.Total, req.Remark)
	if err != nil {
		abortWithError(c, err)
		return
	}

	// Fold the new orders into the customer's session immediately so the
	// next listing shows them without waiting for a pull.
	session := h.manager.Session(profileFrom(claims))
	for _, order := range orders {
		session.ApplyRemote(order)
	}

	c.JSON(http.StatusCreated, orders)
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	session := h.manager.Session(profileFrom(CurrentClaims(c)))
	orders := session.ActiveOrders()
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatus handles POST /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	switch req.Status {
	case model.OrderStatusOngoing, model.OrderStatusCompleted, model.OrderStatusCancelled:
	default:
		c.Status(http.StatusBadRequest)
		return
	}

	session := h.manager.Session(profileFrom(CurrentClaims(c)))
	updated, err := session.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason, req.Note)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Dismiss handles POST /api/orders/:id/dismiss: hides a finished ticket
// from the board without touching the remote record.
func (h *OrderHandler) Dismiss(c *gin.Context) {
	session := h.manager.Session(profileFrom(CurrentClaims(c)))
	session.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Export handles GET /api/orders/export.csv.
func (h *OrderHandler) Export(c *gin.Context) {
	session := h.manager.Session(profileFrom(CurrentClaims(c)))
	orders := session.Orders()

	filename := fmt.Sprintf("orders-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := h.facade.ExportOrdersCSV(c.Request.Context(), c.Writer, orders); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// Restaurants handles GET /api/restaurants for customers: the hub's online
// storefronts from the session cache, usable even while a pull is in flight.
func (h *OrderHandler) Restaurants(c *gin.Context) {
	session := h.manager.Session(profileFrom(CurrentClaims(c)))
	c.JSON(http.StatusOK, session.Restaurants())
}
