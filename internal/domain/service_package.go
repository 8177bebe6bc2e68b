package domain

import "slices"

type PriceType string

const (
	PriceFixed  PriceType = "fixed"
	PriceRange  PriceType = "range"
	PriceHidden PriceType = "hidden"
)

// ServicePackage is a production offering. List order is display order and is
// preserved verbatim by the repository.
type ServicePackage struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       string          `json:"price"`
	PriceType   PriceType       `json:"priceType"`
	Inclusions  []string        `json:"inclusions"`
	Options     []ServiceOption `json:"options"`
	Image       string          `json:"image"`
	IsDeleted   bool            `json:"isDeleted,omitempty"`
}

type ServiceOption struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (s ServicePackage) Clone() ServicePackage {
	out := s
	out.Inclusions = slices.Clone(s.Inclusions)
	out.Options = slices.Clone(s.Options)
	return out
}
