package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskforce/internal/domain"
	"taskforce/internal/repository"
	"taskforce/internal/storage"
)

func newTestService(t *testing.T) (*Service, *repository.ContentRepository) {
	t.Helper()
	repo := repository.New(storage.NewMemory())
	return NewService(repo), repo
}

func serviceIDs(list []domain.ServicePackage) []string {
	ids := make([]string, len(list))
	for i, sp := range list {
		ids[i] = sp.ID
	}
	return ids
}

func TestPortfolioTrashView(t *testing.T) {
	svc, repo := newTestService(t)
	repo.SetPortfolios([]domain.Portfolio{
		{ID: "p1", Title: "Active"},
		{ID: "p2", Title: "Trashed", IsDeleted: true},
	})

	active := svc.Portfolios(false)
	require.Len(t, active, 1)
	assert.Equal(t, "p1", active[0].ID)

	trash := svc.Portfolios(true)
	require.Len(t, trash, 1)
	assert.Equal(t, "p2", trash[0].ID)
}

func TestReorderServices(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetServices([]domain.ServicePackage{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"},
	})

	require.NoError(t, svc.ReorderServices(0, 2))
	assert.Equal(t, []string{"b", "c", "a", "d"}, serviceIDs(svc.Services(false)))

	require.NoError(t, svc.ReorderServices(3, 0))
	assert.Equal(t, []string{"d", "b", "c", "a"}, serviceIDs(svc.Services(false)))

	require.NoError(t, svc.ReorderServices(1, 1))
	assert.Equal(t, []string{"d", "b", "c", "a"}, serviceIDs(svc.Services(false)))
}

func TestReorderServicesSkipsTrash(t *testing.T) {
	svc, repo := newTestService(t)
	repo.SetServices([]domain.ServicePackage{
		{ID: "a"},
		{ID: "x", IsDeleted: true},
		{ID: "b"},
		{ID: "c"},
	})

	// Indices address the active list (a, b, c); the trashed package keeps
	// its slot in the stored list.
	require.NoError(t, svc.ReorderServices(0, 2))
	assert.Equal(t, []string{"b", "c", "a"}, serviceIDs(svc.Services(false)))

	full := repo.Snapshot().Services
	require.Len(t, full, 4)
	assert.Equal(t, "x", full[1].ID)
	assert.True(t, full[1].IsDeleted)
}

func TestReorderServicesRejectsBadIndex(t *testing.T) {
	svc, _ := newTestService(t)
	svc.SetServices([]domain.ServicePackage{{ID: "a"}, {ID: "b"}})

	assert.ErrorIs(t, svc.ReorderServices(-1, 0), ErrInvalidIndex)
	assert.ErrorIs(t, svc.ReorderServices(0, 2), ErrInvalidIndex)
	assert.ErrorIs(t, svc.ReorderServices(5, 0), ErrInvalidIndex)
}

func TestInquiryStatusFlow(t *testing.T) {
	svc, repo := newTestService(t)
	created := repo.AddInquiry(domain.InquiryDraft{Name: "Kim"})

	svc.SetInquiryStatus(created.ID, domain.InquiryHold)

	inquiries := svc.Inquiries(false)
	require.Len(t, inquiries, 1)
	assert.Equal(t, domain.InquiryHold, inquiries[0].Status)
}

func TestSoftDeleteMovesBetweenViews(t *testing.T) {
	svc, repo := newTestService(t)
	created := repo.AddInquiry(domain.InquiryDraft{Name: "Kim"})

	svc.SetInquiryDeleted(created.ID, true)
	assert.Empty(t, svc.Inquiries(false))
	require.Len(t, svc.Inquiries(true), 1)

	svc.SetInquiryDeleted(created.ID, false)
	require.Len(t, svc.Inquiries(false), 1)
	assert.Empty(t, svc.Inquiries(true))
}

func TestEncodeMedia(t *testing.T) {
	svc, _ := newTestService(t)

	// Minimal PNG header is enough for content-type sniffing.
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	url, err := svc.EncodeMedia(png)
	require.NoError(t, err)
	assert.Contains(t, url, "data:image/png;base64,")
}

func TestEncodeMediaRejectsBadInput(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.EncodeMedia(nil)
	assert.ErrorIs(t, err, ErrInvalidMedia)

	_, err = svc.EncodeMedia([]byte("%PDF-1.4 not a picture"))
	assert.ErrorIs(t, err, ErrInvalidMedia)

	oversized := make([]byte, maxMediaBytes+1)
	_, err = svc.EncodeMedia(oversized)
	assert.ErrorIs(t, err, ErrInvalidMedia)
}
