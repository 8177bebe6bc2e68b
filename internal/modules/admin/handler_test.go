package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskforce/internal/domain"
	"taskforce/internal/middleware"
	jwtsvc "taskforce/internal/pkg/jwt"
	"taskforce/internal/repository"
	"taskforce/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.ContentRepository, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New(storage.NewMemory())
	handler := NewHandler(NewService(repo))

	j := jwtsvc.New("test-secret", time.Hour)
	token, err := j.GenerateAdminToken()
	require.NoError(t, err)

	router := gin.New()
	protected := router.Group("/api/v1/admin")
	protected.Use(middleware.AdminAuth(j))
	handler.RegisterRoutes(protected)

	return router, repo, token
}

func performRequest(router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/admin/portfolios", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/v1/admin/portfolios", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestUpdateHome(t *testing.T) {
	router, repo, token := setupRouter(t)

	content := repo.Snapshot().HomeContent
	content.Hero.Headline = "New Headline"
	content.Stats.Projects = 500

	resp := performRequest(router, http.MethodPut, "/api/v1/admin/home", content, token)
	require.Equal(t, http.StatusOK, resp.Code)

	got := repo.Snapshot().HomeContent
	assert.Equal(t, "New Headline", got.Hero.Headline)
	assert.Equal(t, 500, got.Stats.Projects)
}

func TestUpdatePortfoliosNormalizes(t *testing.T) {
	router, repo, token := setupRouter(t)

	resp := performRequest(router, http.MethodPut, "/api/v1/admin/portfolios", []domain.Portfolio{{
		Title:  "Hyundai Brand Film 2024",
		Status: domain.StatusPublished,
		MediaGallery: []domain.MediaAsset{
			{ID: "m1", IsHero: true},
			{ID: "m2", IsHero: true},
		},
	}}, token)
	require.Equal(t, http.StatusOK, resp.Code)

	snap := repo.Snapshot()
	require.Len(t, snap.Portfolios, 1)
	p := snap.Portfolios[0]
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "hyundai-brand-film-2024", p.Slug)
	assert.True(t, p.MediaGallery[0].IsHero)
	assert.False(t, p.MediaGallery[1].IsHero)
}

func TestSoftDeleteRestorePurgeFlow(t *testing.T) {
	router, repo, token := setupRouter(t)
	repo.SetPortfolios([]domain.Portfolio{{ID: "p1", Title: "Work"}})

	resp := performRequest(router, http.MethodPatch, "/api/v1/admin/portfolios/p1/deleted",
		gin.H{"deleted": true}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, repo.Snapshot().Portfolios[0].IsDeleted)

	resp = performRequest(router, http.MethodPatch, "/api/v1/admin/portfolios/p1/deleted",
		gin.H{"deleted": false}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.False(t, repo.Snapshot().Portfolios[0].IsDeleted)

	resp = performRequest(router, http.MethodDelete, "/api/v1/admin/portfolios/p1", nil, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, repo.Snapshot().Portfolios)
}

func TestSetDeletedRequiresFlag(t *testing.T) {
	router, _, token := setupRouter(t)

	resp := performRequest(router, http.MethodPatch, "/api/v1/admin/portfolios/p1/deleted",
		gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestSetInquiryStatusValidation(t *testing.T) {
	router, repo, token := setupRouter(t)
	created := repo.AddInquiry(domain.InquiryDraft{Name: "Kim"})

	resp := performRequest(router, http.MethodPatch, "/api/v1/admin/inquiries/"+created.ID+"/status",
		gin.H{"status": "completed"}, token)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, domain.InquiryCompleted, repo.Snapshot().Inquiries[0].Status)

	resp = performRequest(router, http.MethodPatch, "/api/v1/admin/inquiries/"+created.ID+"/status",
		gin.H{"status": "published"}, token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, domain.InquiryCompleted, repo.Snapshot().Inquiries[0].Status)
}

func TestReorderServicesEndpoint(t *testing.T) {
	router, repo, token := setupRouter(t)
	repo.SetServices([]domain.ServicePackage{{ID: "a"}, {ID: "b"}, {ID: "c"}})

	resp := performRequest(router, http.MethodPost, "/api/v1/admin/services/reorder",
		gin.H{"from": 2, "to": 0}, token)
	require.Equal(t, http.StatusOK, resp.Code)

	snap := repo.Snapshot()
	assert.Equal(t, "c", snap.Services[0].ID)

	resp = performRequest(router, http.MethodPost, "/api/v1/admin/services/reorder",
		gin.H{"from": 9, "to": 0}, token)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
