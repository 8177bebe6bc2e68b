package admin

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"taskforce/internal/domain"
)

// maxMediaBytes caps inline media uploads. Assets are embedded as data URLs
// inside the snapshot, so oversized files would bloat every persist.
const maxMediaBytes = 8 << 20

// ContentStore is the full mutation surface the CMS drives.
type ContentStore interface {
	Snapshot() domain.Snapshot

	ReplaceHome(content domain.HomeContent)
	ReplaceAbout(content domain.AboutContent)
	ReplaceSettings(settings domain.SiteSettings)

	SetPortfolios(list []domain.Portfolio)
	SetServices(list []domain.ServicePackage)
	SetReviews(list []domain.Review)
	SetFAQs(list []domain.FAQ)

	SetInquiryStatus(id string, status domain.InquiryStatus)
	SetPortfolioDeleted(id string, deleted bool)
	SetServiceDeleted(id string, deleted bool)
	SetInquiryDeleted(id string, deleted bool)
	PurgePortfolio(id string)
	PurgeService(id string)
	PurgeInquiry(id string)
}

type Service struct {
	content ContentStore
}

func NewService(content ContentStore) *Service {
	return &Service{content: content}
}

func (s *Service) ReplaceHome(content domain.HomeContent)       { s.content.ReplaceHome(content) }
func (s *Service) ReplaceAbout(content domain.AboutContent)     { s.content.ReplaceAbout(content) }
func (s *Service) ReplaceSettings(settings domain.SiteSettings) { s.content.ReplaceSettings(settings) }

func (s *Service) HomeContent() domain.HomeContent   { return s.content.Snapshot().HomeContent }
func (s *Service) AboutContent() domain.AboutContent { return s.content.Snapshot().AboutContent }
func (s *Service) Settings() domain.SiteSettings     { return s.content.Snapshot().SiteSettings }

// Portfolios returns the active list, or the trash when deleted is true.
func (s *Service) Portfolios(deleted bool) []domain.Portfolio {
	var out []domain.Portfolio
	for _, p := range s.content.Snapshot().Portfolios {
		if p.IsDeleted == deleted {
			out = append(out, p)
		}
	}
	return out
}

func (s *Service) SetPortfolios(list []domain.Portfolio) {
	s.content.SetPortfolios(list)
}

func (s *Service) Services(deleted bool) []domain.ServicePackage {
	var out []domain.ServicePackage
	for _, sp := range s.content.Snapshot().Services {
		if sp.IsDeleted == deleted {
			out = append(out, sp)
		}
	}
	return out
}

func (s *Service) SetServices(list []domain.ServicePackage) {
	s.content.SetServices(list)
}

// ReorderServices moves the active package at index from to index to, indices
// counted over the active (non-deleted) list as the admin sees it. Trashed
// packages keep their positions in the stored list.
func (s *Service) ReorderServices(from, to int) error {
	full := s.content.Snapshot().Services

	var activeIdx []int
	for i, sp := range full {
		if !sp.IsDeleted {
			activeIdx = append(activeIdx, i)
		}
	}

	if from < 0 || from >= len(activeIdx) || to < 0 || to >= len(activeIdx) {
		return ErrInvalidIndex
	}
	if from == to {
		return nil
	}

	active := make([]domain.ServicePackage, len(activeIdx))
	for i, idx := range activeIdx {
		active[i] = full[idx]
	}

	moved := active[from]
	active = append(active[:from], active[from+1:]...)
	rest := append(active[:to:to], append([]domain.ServicePackage{moved}, active[to:]...)...)

	for i, idx := range activeIdx {
		full[idx] = rest[i]
	}
	s.content.SetServices(full)
	return nil
}

func (s *Service) Reviews() []domain.Review        { return s.content.Snapshot().Reviews }
func (s *Service) SetReviews(list []domain.Review) { s.content.SetReviews(list) }

func (s *Service) FAQs() []domain.FAQ        { return s.content.Snapshot().FAQs }
func (s *Service) SetFAQs(list []domain.FAQ) { s.content.SetFAQs(list) }

func (s *Service) Inquiries(deleted bool) []domain.Inquiry {
	var out []domain.Inquiry
	for _, inq := range s.content.Snapshot().Inquiries {
		if inq.IsDeleted == deleted {
			out = append(out, inq)
		}
	}
	return out
}

func (s *Service) SetInquiryStatus(id string, status domain.InquiryStatus) {
	s.content.SetInquiryStatus(id, status)
}

func (s *Service) SetPortfolioDeleted(id string, deleted bool) {
	s.content.SetPortfolioDeleted(id, deleted)
}
func (s *Service) SetServiceDeleted(id string, deleted bool) {
	s.content.SetServiceDeleted(id, deleted)
}
func (s *Service) SetInquiryDeleted(id string, deleted bool) {
	s.content.SetInquiryDeleted(id, deleted)
}

func (s *Service) PurgePortfolio(id string) { s.content.PurgePortfolio(id) }
func (s *Service) PurgeService(id string)   { s.content.PurgeService(id) }
func (s *Service) PurgeInquiry(id string)   { s.content.PurgeInquiry(id) }

// EncodeMedia turns an uploaded file into the inline data-URL representation
// stored inside the snapshot. On any failure the gallery is untouched; the
// caller just gets an error.
func (s *Service) EncodeMedia(data []byte) (string, error) {
	if len(data) == 0 || len(data) > maxMediaBytes {
		return "", ErrInvalidMedia
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") && !strings.HasPrefix(mime, "video/") {
		return "", ErrInvalidMedia
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}
