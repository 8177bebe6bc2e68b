package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskforce/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the public auth endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/auth")
	{
		grp.POST("/login", h.Login)
		grp.GET("/session", h.Session)
	}
}

// RegisterProtectedRoutes wires endpoints behind the admin gate.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
}

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	token, err := h.service.Login(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
		return
	}

	response.Success(c, http.StatusOK, LoginResponse{Token: token, IsAdmin: true})
}

// Logout handles POST /api/v1/admin/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	h.service.Logout()
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// Session handles GET /api/v1/auth/session
func (h *Handler) Session(c *gin.Context) {
	response.Success(c, http.StatusOK, SessionResponse{IsAdmin: h.service.IsAdmin()})
}
