package admin

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskforce/internal/domain"
	"taskforce/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the CMS endpoints. The caller mounts them behind the
// admin auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.GetHome)
	rg.PUT("/home", h.UpdateHome)
	rg.GET("/about", h.GetAbout)
	rg.PUT("/about", h.UpdateAbout)
	rg.GET("/settings", h.GetSettings)
	rg.PUT("/settings", h.UpdateSettings)

	rg.GET("/portfolios", h.GetPortfolios)
	rg.PUT("/portfolios", h.UpdatePortfolios)
	rg.PATCH("/portfolios/:id/deleted", h.SetPortfolioDeleted)
	rg.DELETE("/portfolios/:id", h.PurgePortfolio)

	rg.GET("/services", h.GetServices)
	rg.PUT("/services", h.UpdateServices)
	rg.POST("/services/reorder", h.ReorderServices)
	rg.PATCH("/services/:id/deleted", h.SetServiceDeleted)
	rg.DELETE("/services/:id", h.PurgeService)

	rg.GET("/reviews", h.GetReviews)
	rg.PUT("/reviews", h.UpdateReviews)
	rg.GET("/faqs", h.GetFAQs)
	rg.PUT("/faqs", h.UpdateFAQs)

	rg.GET("/inquiries", h.GetInquiries)
	rg.PATCH("/inquiries/:id/status", h.SetInquiryStatus)
	rg.PATCH("/inquiries/:id/deleted", h.SetInquiryDeleted)
	rg.DELETE("/inquiries/:id", h.PurgeInquiry)

	rg.POST("/media", h.UploadMedia)
}

func (h *Handler) GetHome(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"content": h.service.HomeContent()})
}

// UpdateHome handles PUT /api/v1/admin/home. The body is the complete section;
// partial updates do not exist.
func (h *Handler) UpdateHome(c *gin.Context) {
	var content domain.HomeContent
	if err := c.ShouldBindJSON(&content); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.ReplaceHome(content)
	response.Success(c, http.StatusOK, gin.H{"content": content})
}

func (h *Handler) GetAbout(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"content": h.service.AboutContent()})
}

func (h *Handler) UpdateAbout(c *gin.Context) {
	var content domain.AboutContent
	if err := c.ShouldBindJSON(&content); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.ReplaceAbout(content)
	response.Success(c, http.StatusOK, gin.H{"content": content})
}

func (h *Handler) GetSettings(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"settings": h.service.Settings()})
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var settings domain.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.ReplaceSettings(settings)
	response.Success(c, http.StatusOK, gin.H{"settings": settings})
}

// GetPortfolios handles GET /api/v1/admin/portfolios[?deleted=true]
func (h *Handler) GetPortfolios(c *gin.Context) {
	deleted := c.Query("deleted") == "true"
	response.Success(c, http.StatusOK, gin.H{"portfolios": h.service.Portfolios(deleted)})
}

// UpdatePortfolios handles PUT /api/v1/admin/portfolios: the full ordered
// list, used for create, edit and reorder alike.
func (h *Handler) UpdatePortfolios(c *gin.Context) {
	var list []domain.Portfolio
	if err := c.ShouldBindJSON(&list); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetPortfolios(list)
	response.Success(c, http.StatusOK, gin.H{"portfolios": h.service.Portfolios(false)})
}

func (h *Handler) SetPortfolioDeleted(c *gin.Context) {
	var req SetDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetPortfolioDeleted(c.Param("id"), *req.Deleted)
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": *req.Deleted})
}

func (h *Handler) PurgePortfolio(c *gin.Context) {
	h.service.PurgePortfolio(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "purged": true})
}

func (h *Handler) GetServices(c *gin.Context) {
	deleted := c.Query("deleted") == "true"
	response.Success(c, http.StatusOK, gin.H{"services": h.service.Services(deleted)})
}

func (h *Handler) UpdateServices(c *gin.Context) {
	var list []domain.ServicePackage
	if err := c.ShouldBindJSON(&list); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetServices(list)
	response.Success(c, http.StatusOK, gin.H{"services": h.service.Services(false)})
}

// ReorderServices handles POST /api/v1/admin/services/reorder, moving one
// active package between display positions.
func (h *Handler) ReorderServices(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	if err := h.service.ReorderServices(*req.From, *req.To); err != nil {
		if errors.Is(err, ErrInvalidIndex) {
			response.Error(c, http.StatusBadRequest, "INVALID_INDEX", "Reorder index out of range")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to reorder services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": h.service.Services(false)})
}

func (h *Handler) SetServiceDeleted(c *gin.Context) {
	var req SetDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetServiceDeleted(c.Param("id"), *req.Deleted)
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": *req.Deleted})
}

func (h *Handler) PurgeService(c *gin.Context) {
	h.service.PurgeService(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "purged": true})
}

func (h *Handler) GetReviews(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"reviews": h.service.Reviews()})
}

func (h *Handler) UpdateReviews(c *gin.Context) {
	var list []domain.Review
	if err := c.ShouldBindJSON(&list); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetReviews(list)
	response.Success(c, http.StatusOK, gin.H{"reviews": h.service.Reviews()})
}

func (h *Handler) GetFAQs(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"faqs": h.service.FAQs()})
}

func (h *Handler) UpdateFAQs(c *gin.Context) {
	var list []domain.FAQ
	if err := c.ShouldBindJSON(&list); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetFAQs(list)
	response.Success(c, http.StatusOK, gin.H{"faqs": h.service.FAQs()})
}

// GetInquiries handles GET /api/v1/admin/inquiries[?deleted=true]
func (h *Handler) GetInquiries(c *gin.Context) {
	deleted := c.Query("deleted") == "true"
	response.Success(c, http.StatusOK, gin.H{"inquiries": h.service.Inquiries(deleted)})
}

func (h *Handler) SetInquiryStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetInquiryStatus(c.Param("id"), domain.InquiryStatus(req.Status))
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "status": req.Status})
}

func (h *Handler) SetInquiryDeleted(c *gin.Context) {
	var req SetDeletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}
	h.service.SetInquiryDeleted(c.Param("id"), *req.Deleted)
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "deleted": *req.Deleted})
}

func (h *Handler) PurgeInquiry(c *gin.Context) {
	h.service.PurgeInquiry(c.Param("id"))
	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id"), "purged": true})
}

// UploadMedia handles POST /api/v1/admin/media (multipart field "file") and
// returns the inline data URL to embed in a gallery.
func (h *Handler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", "Missing media file")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", "Unreadable media file")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxMediaBytes+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", "Unreadable media file")
		return
	}

	url, err := h.service.EncodeMedia(data)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_MEDIA", "Unsupported or oversized media file")
		return
	}

	response.Success(c, http.StatusCreated, MediaResponse{URL: url})
}
