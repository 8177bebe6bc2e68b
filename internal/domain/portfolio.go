package domain

import "slices"

type PortfolioStatus string

const (
	StatusDraft     PortfolioStatus = "draft"
	StatusPublished PortfolioStatus = "published"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Portfolio is a case study. Public pages show it only when it is published
// and not soft-deleted; drafts stay admin-only regardless of delete state.
type Portfolio struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Slug       string          `json:"slug"`
	Status     PortfolioStatus `json:"status"`
	Featured   bool            `json:"featured"`
	Category   string          `json:"category"`
	Tags       []string        `json:"tags"`
	OneLiner   string          `json:"oneLiner"`
	Summary    string          `json:"summary"`
	ClientName string          `json:"clientName,omitempty"`
	Industry   string          `json:"industry,omitempty"`
	Date       string          `json:"date,omitempty"`
	Scope      []string        `json:"scope"`
	Overview   string          `json:"overview"`
	Problem    string          `json:"problem"`
	Solution   string          `json:"solution"`
	Results    string          `json:"results"`
	IsDeleted  bool            `json:"isDeleted,omitempty"`

	MediaGallery []MediaAsset `json:"mediaGallery"`
	VideoLinks   []VideoLink  `json:"videoLinks"`
}

// MediaAsset is one gallery item. At most one asset per gallery may carry
// IsHero; the repository normalizes galleries on every write.
type MediaAsset struct {
	ID      string    `json:"id"`
	URL     string    `json:"url"`
	Type    MediaType `json:"type"`
	IsHero  bool      `json:"isHero"`
	Order   int       `json:"order"`
	Caption string    `json:"caption,omitempty"`
	Alt     string    `json:"alt,omitempty"`
}

type VideoLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Title    string `json:"title"`
}

func (p Portfolio) Clone() Portfolio {
	out := p
	out.Tags = slices.Clone(p.Tags)
	out.Scope = slices.Clone(p.Scope)
	out.MediaGallery = slices.Clone(p.MediaGallery)
	out.VideoLinks = slices.Clone(p.VideoLinks)
	return out
}

// Hero returns the designated hero asset, or nil when the gallery has none.
func (p Portfolio) Hero() *MediaAsset {
	for i := range p.MediaGallery {
		if p.MediaGallery[i].IsHero {
			return &p.MediaGallery[i]
		}
	}
	return nil
}
