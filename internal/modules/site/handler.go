package site

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.GetHome)
	rg.GET("/about", h.GetAbout)
	rg.GET("/settings", h.GetSettings)
	rg.GET("/portfolios", h.GetPortfolios)
	rg.GET("/portfolios/:slug", h.GetPortfolioBySlug)
	rg.GET("/services", h.GetServices)
	rg.GET("/reviews", h.GetReviews)
	rg.GET("/faqs", h.GetFAQs)
	rg.POST("/inquiries", h.SubmitInquiry)
}

// GetHome handles GET /api/v1/home
func (h *Handler) GetHome(c *gin.Context) {
	content, featured := h.service.Home()
	response.Success(c, http.StatusOK, gin.H{
		"content":  content,
		"featured": featured,
	})
}

func (h *Handler) GetAbout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"content": h.service.About()})
}

func (h *Handler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"settings": h.service.Settings()})
}

// GetPortfolios handles GET /api/v1/portfolios?category=&q=
func (h *Handler) GetPortfolios(c *gin.Context) {
	portfolios, categories := h.service.Portfolios(c.Query("category"), c.Query("q"))
	response.Success(c, http.StatusOK, gin.H{
		"portfolios": portfolios,
		"categories": categories,
	})
}

// GetPortfolioBySlug handles GET /api/v1/portfolios/:slug. A miss is a plain
// 404; the client falls back to the list view.
func (h *Handler) GetPortfolioBySlug(c *gin.Context) {
	portfolio, related, err := h.service.PortfolioBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Portfolio not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load portfolio")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"portfolio": portfolio,
		"related":   related,
	})
}

func (h *Handler) GetServices(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"services": h.service.Services()})
}

func (h *Handler) GetReviews(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"reviews": h.service.Reviews()})
}

func (h *Handler) GetFAQs(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"faqs": h.service.FAQs()})
}

// SubmitInquiry handles POST /api/v1/inquiries
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err.Error())
		return
	}

	inquiry := h.service.SubmitInquiry(req)
	response.Success(c, http.StatusCreated, gin.H{"inquiry": inquiry})
}
