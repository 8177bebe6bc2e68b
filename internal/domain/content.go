package domain

import "slices"

// HomeContent is the editable copy for the landing page. Edited wholesale:
// the admin editor always submits the full object.
type HomeContent struct {
	Hero    Hero        `json:"hero"`
	Stats   Stats       `json:"stats"`
	Process ProcessInfo `json:"process"`
}

type Hero struct {
	Headline    string `json:"headline"`
	SubHeadline string `json:"subHeadline"`
	CTAText     string `json:"ctaText"`
	BannerImage string `json:"bannerImage"`
	Visible     bool   `json:"visible"`
}

type Stats struct {
	Experience int  `json:"experience"`
	Projects   int  `json:"projects"`
	Clients    int  `json:"clients"`
	Visible    bool `json:"visible"`
}

type ProcessInfo struct {
	Visible bool          `json:"visible"`
	Steps   []ProcessStep `json:"steps"`
}

type ProcessStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h HomeContent) Clone() HomeContent {
	out := h
	out.Process.Steps = slices.Clone(h.Process.Steps)
	return out
}

// AboutContent is the editable copy for the about page.
type AboutContent struct {
	Manifesto  Manifesto  `json:"manifesto"`
	Director   Director   `json:"director"`
	Philosophy Philosophy `json:"philosophy"`
	Equipment  Equipment  `json:"equipment"`
}

type Manifesto struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Director struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Philosophy struct {
	Title string           `json:"title"`
	Items []PhilosophyItem `json:"items"`
}

type PhilosophyItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Equipment struct {
	Title      string              `json:"title"`
	Categories []EquipmentCategory `json:"categories"`
}

type EquipmentCategory struct {
	Title string   `json:"title"`
	List  []string `json:"list"`
}

func (a AboutContent) Clone() AboutContent {
	out := a
	out.Philosophy.Items = slices.Clone(a.Philosophy.Items)
	if a.Equipment.Categories != nil {
		cats := make([]EquipmentCategory, len(a.Equipment.Categories))
		for i, c := range a.Equipment.Categories {
			c.List = slices.Clone(c.List)
			cats[i] = c
		}
		out.Equipment.Categories = cats
	}
	return out
}

// SiteSettings holds contact details and social links shown in the layout.
type SiteSettings struct {
	Contact ContactInfo `json:"contact"`
	Social  SocialLinks `json:"social"`
}

type ContactInfo struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type SocialLinks struct {
	Instagram string `json:"instagram"`
	YouTube   string `json:"youtube"`
}

// Review is a client testimonial shown on the public site.
type Review struct {
	ID         string `json:"id"`
	Author     string `json:"author"`
	Company    string `json:"company"`
	Content    string `json:"content"`
	Rating     int    `json:"rating"`
	ProjectURL string `json:"projectUrl,omitempty"`
	Image      string `json:"image,omitempty"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
