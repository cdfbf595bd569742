// Package view renders the four pages of the board as HTML.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/models"
	"github.com/atinyakov/pakjobs/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

// ProfileForm is the prefilled content of the profile editor.
type ProfileForm struct {
	City   string
	Skills string
	Bio    string
}

// PageData is what the templates render from.
type PageData struct {
	Page          string
	Authenticated bool
	User          models.UserProfile
	NeedsProfile  bool
	LoginMode     bool
	Flash         string
	Notice        *models.JobPosting
	Filters       models.Filters

	Cities         []string
	FeaturedCities []string
	Categories     []string
	Featured       []models.JobPosting
	Results        []models.JobPosting
	Form           ProfileForm
}

// NewPageData builds the render input for st. The listing is recomputed
// from the catalog on every call.
func NewPageData(st app.State) PageData {
	u, ok := st.Session.User()
	d := PageData{
		Page:           string(st.Page),
		Authenticated:  ok,
		User:           u,
		NeedsProfile:   st.NeedsProfile(),
		LoginMode:      st.LoginMode,
		Flash:          st.Flash,
		Notice:         st.Notice,
		Filters:        st.Filters,
		Cities:         catalog.Cities(),
		FeaturedCities: catalog.FeaturedCities(),
		Categories:     catalog.Categories(),
	}
	switch st.Page {
	case models.PageJobs:
		d.Results = catalog.Filter(catalog.Jobs(), st.Filters)
	case models.PageProfile:
		d.Form = ProfileForm{City: u.City, Skills: session.JoinSkills(u.Skills), Bio: u.Bio}
	default:
		d.Featured = catalog.Featured(catalog.FeaturedCount)
	}
	return d
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page for d to w.
func (r *Renderer) Render(w io.Writer, d PageData) error {
	return r.tmpl.ExecuteTemplate(w, "layout", d)
}
