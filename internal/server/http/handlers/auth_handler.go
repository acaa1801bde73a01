package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/quickserve/quickserve/internal/domain/errors"
	"github.com/quickserve/quickserve/internal/server/http/dto"
	"github.com/quickserve/quickserve/internal/server/http/middleware"
)

// AuthHandler processes vendor registration, login, and the silent QR
// table-session entry.
type AuthHandler struct {
	facade  AuthFacade
	manager SyncManager
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, manager SyncManager) *AuthHandler {
	return &AuthHandler{facade: facade, manager: manager}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.VendorRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.RegisterVendor(c.Request.Context(), req.Login, req.Password, req.RestaurantName, req.Hub)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.Status(http.StatusBadRequest)
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.Status(http.StatusConflict)
		default:
			abortWithError(c, err)
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		abortWithError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

// TableSession handles GET /api/session?loc=<hub>&table=<n>: the entry
// point a table QR code resolves to. No credentials are asked for.
func (h *AuthHandler) TableSession(c *gin.Context) {
	hub := c.Query("loc")
	table, err := strconv.Atoi(c.Query("table"))
	if hub == "" || err != nil || table < 1 {
		c.Status(http.StatusBadRequest)
		return
	}

	token, err := h.facade.TableSession(c.Request.Context(), hub, table)
	if err != nil {
		abortWithError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.TableSessionResponse{Token: token, Hub: hub, Table: table})
}

// Logout handles POST /api/logout: it tears down the principal's sync
// session so no poll timer outlives the login.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.manager.Drop(profileFrom(CurrentClaims(c)))
	c.Status(http.StatusNoContent)
}
