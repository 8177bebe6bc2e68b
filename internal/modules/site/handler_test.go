package site

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskforce/internal/domain"
	"taskforce/internal/repository"
	"taskforce/internal/storage"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.ContentRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.New(storage.NewMemory())
	handler := NewHandler(NewService(repo, 6))

	router := gin.New()
	v1 := router.Group("/api/v1")
	handler.RegisterRoutes(v1)

	return router, repo
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	var payload struct {
		Success bool                       `json:"success"`
		Data    map[string]json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.True(t, payload.Success)
	return payload.Data
}

func TestGetHome(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/home", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	data := decodeData(t, resp)

	var content domain.HomeContent
	require.NoError(t, json.Unmarshal(data["content"], &content))
	assert.NotEmpty(t, content.Hero.Headline)

	// The default snapshot ships one published featured portfolio.
	var featured []domain.Portfolio
	require.NoError(t, json.Unmarshal(data["featured"], &featured))
	require.Len(t, featured, 1)
	assert.Equal(t, "hyundai-brand-film-2024", featured[0].Slug)
}

func TestGetPortfolioBySlugNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/v1/portfolios/no-such-work", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetPortfoliosExcludesDrafts(t *testing.T) {
	router, repo := setupRouter(t)
	repo.SetPortfolios([]domain.Portfolio{
		{ID: "p1", Title: "Published Work", Status: domain.StatusPublished},
		{ID: "p2", Title: "Draft Work", Status: domain.StatusDraft},
	})

	resp := performRequest(router, http.MethodGet, "/api/v1/portfolios", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	data := decodeData(t, resp)
	var portfolios []domain.Portfolio
	require.NoError(t, json.Unmarshal(data["portfolios"], &portfolios))
	require.Len(t, portfolios, 1)
	assert.Equal(t, "p1", portfolios[0].ID)
}

func TestSubmitInquiryEndpoint(t *testing.T) {
	router, repo := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/inquiries", ContactRequest{
		Name:    "Kim",
		Contact: "010-1111-2222",
		Purpose: "브랜드 홍보",
		Type:    "유튜브/SNS용",
		Budget:  "500만원 이하",
		Date:    "2024-05-01",
		Message: "test",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	inquiries := repo.Snapshot().Inquiries
	require.Len(t, inquiries, 1)
	assert.Equal(t, "Kim", inquiries[0].Name)
	assert.Equal(t, domain.InquiryNew, inquiries[0].Status)
}

func TestSubmitInquiryRequiresFields(t *testing.T) {
	router, repo := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/v1/inquiries", map[string]string{
		"name": "Kim",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Empty(t, repo.Snapshot().Inquiries)
}
