package site

import (
	"sort"
	"strings"

	"taskforce/internal/domain"
)

// ContentStore is the slice of the repository the public site consumes.
type ContentStore interface {
	Snapshot() domain.Snapshot
	AddInquiry(draft domain.InquiryDraft) domain.Inquiry
}

// Service derives the public views. Every call recomputes its filter from a
// fresh snapshot; nothing here caches derived lists.
type Service struct {
	content       ContentStore
	featuredLimit int
}

func NewService(content ContentStore, featuredLimit int) *Service {
	return &Service{content: content, featuredLimit: featuredLimit}
}

func publiclyVisible(p domain.Portfolio) bool {
	return !p.IsDeleted && p.Status == domain.StatusPublished
}

// Home returns the landing-page content plus the featured portfolio set:
// published, not deleted, flagged featured, capped at the configured limit.
func (s *Service) Home() (domain.HomeContent, []domain.Portfolio) {
	snap := s.content.Snapshot()

	featured := make([]domain.Portfolio, 0, s.featuredLimit)
	for _, p := range snap.Portfolios {
		if publiclyVisible(p) && p.Featured {
			featured = append(featured, p)
			if len(featured) == s.featuredLimit {
				break
			}
		}
	}
	return snap.HomeContent, featured
}

func (s *Service) About() domain.AboutContent {
	return s.content.Snapshot().AboutContent
}

func (s *Service) Settings() domain.SiteSettings {
	return s.content.Snapshot().SiteSettings
}

// Portfolios lists published, non-deleted case studies, optionally narrowed
// by category and by a case-insensitive search over title and tags. The
// returned category list covers all active portfolios, not just the matches.
func (s *Service) Portfolios(category, query string) ([]domain.Portfolio, []string) {
	snap := s.content.Snapshot()
	query = strings.ToLower(strings.TrimSpace(query))

	var visible []domain.Portfolio
	catSet := map[string]struct{}{}
	for _, p := range snap.Portfolios {
		if !publiclyVisible(p) {
			continue
		}
		catSet[p.Category] = struct{}{}

		if category != "" && category != "All" && p.Category != category {
			continue
		}
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		visible = append(visible, p)
	}

	categories := make([]string, 0, len(catSet))
	for cat := range catSet {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	return visible, categories
}

func matchesQuery(p domain.Portfolio, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// PortfolioBySlug resolves a public detail view along with up to three
// related case studies from the same category.
func (s *Service) PortfolioBySlug(slugStr string) (*domain.Portfolio, []domain.Portfolio, error) {
	snap := s.content.Snapshot()

	var found *domain.Portfolio
	for i := range snap.Portfolios {
		if snap.Portfolios[i].Slug == slugStr && publiclyVisible(snap.Portfolios[i]) {
			found = &snap.Portfolios[i]
			break
		}
	}
	if found == nil {
		return nil, nil, ErrNotFound
	}

	var related []domain.Portfolio
	for _, p := range snap.Portfolios {
		if p.ID == found.ID || p.Category != found.Category || !publiclyVisible(p) {
			continue
		}
		related = append(related, p)
		if len(related) == 3 {
			break
		}
	}

	return found, related, nil
}

// Services lists the offer packages in stored (display) order, trash excluded.
func (s *Service) Services() []domain.ServicePackage {
	snap := s.content.Snapshot()
	var active []domain.ServicePackage
	for _, sp := range snap.Services {
		if !sp.IsDeleted {
			active = append(active, sp)
		}
	}
	return active
}

func (s *Service) Reviews() []domain.Review {
	return s.content.Snapshot().Reviews
}

func (s *Service) FAQs() []domain.FAQ {
	return s.content.Snapshot().FAQs
}

// SubmitInquiry records a contact-form submission.
func (s *Service) SubmitInquiry(req ContactRequest) domain.Inquiry {
	return s.content.AddInquiry(domain.InquiryDraft{
		Name:    req.Name,
		Contact: req.Contact,
		Purpose: req.Purpose,
		Type:    req.Type,
		Budget:  req.Budget,
		Date:    req.Date,
		Message: req.Message,
	})
}
