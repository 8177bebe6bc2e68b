package domain

import "slices"

// Snapshot is the complete site content at one instant. Mutations never edit
// it in place; they build a replacement and swap it wholesale, so a reader
// always observes either the pre- or post-mutation state.
type Snapshot struct {
	HomeContent  HomeContent      `json:"homeContent"`
	AboutContent AboutContent     `json:"aboutContent"`
	SiteSettings SiteSettings     `json:"siteSettings"`
	Portfolios   []Portfolio      `json:"portfolios"`
	Services     []ServicePackage `json:"services"`
	Reviews      []Review         `json:"reviews"`
	FAQs         []FAQ            `json:"faqs"`
	Inquiries    []Inquiry        `json:"inquiries"`
}

// Clone returns a deep copy. Repository reads hand out clones so callers can
// never alias repository-owned slices.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.HomeContent = s.HomeContent.Clone()
	out.AboutContent = s.AboutContent.Clone()
	out.Portfolios = clonePortfolios(s.Portfolios)
	out.Services = cloneServices(s.Services)
	out.Reviews = slices.Clone(s.Reviews)
	out.FAQs = slices.Clone(s.FAQs)
	out.Inquiries = slices.Clone(s.Inquiries)
	return out
}

func clonePortfolios(in []Portfolio) []Portfolio {
	if in == nil {
		return nil
	}
	out := make([]Portfolio, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func cloneServices(in []ServicePackage) []ServicePackage {
	if in == nil {
		return nil
	}
	out := make([]ServicePackage, len(in))
	for i, sp := range in {
		out[i] = sp.Clone()
	}
	return out
}
