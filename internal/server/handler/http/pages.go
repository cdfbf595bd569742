// Package http provides the HTML pages and form actions of the board.
package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/pakjobs/internal/app"
	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
	"github.com/atinyakov/pakjobs/internal/view"
)

// Board defines the application state operations
// required by the HTTP handlers.
type Board interface {
	// View returns the current state and consumes its flash message.
	View() app.State
	// Snapshot returns the current state.
	Snapshot() app.State
	// Do runs a reducer that does not touch the session.
	Do(func(*app.State))
	// Login signs in with the demo identity.
	Login(ctx context.Context, email, password string) error
	// Register creates a new profile.
	Register(ctx context.Context, fullName, email, password string) error
	// Logout signs out.
	Logout(ctx context.Context) error
	// UpdateProfile saves the profile form.
	UpdateProfile(ctx context.Context, bio, skillsText, city string) error
	// Apply runs the application gate for a posting.
	Apply(jobID string) (gate.Decision, error)
}

// PageHandler serves the rendered page and the form actions that change it.
// Every action redirects back to "/" (post/redirect/get).
type PageHandler struct {
	Board    Board
	Renderer *view.Renderer
	Log      *zap.Logger
}

func (h *PageHandler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.NewNop()
	}
	return h.Log
}

func backHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// formValue returns the trimmed form field.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}

func validCity(c string) bool     { return c == "" || catalog.IsCity(c) }
func validCategory(c string) bool { return c == "" || catalog.IsCategory(c) }

// Index renders the active page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, view.NewPageData(h.Board.View())); err != nil {
		h.logger().Error("render failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// Navigate switches to the page named by the "page" field.
func (h *PageHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	page, ok := models.ParsePage(r.PostFormValue("page"))
	if !ok {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	h.Board.Do(func(s *app.State) { app.Navigate(s, page) })
	backHome(w, r)
}

// Search applies the hero search ("q", "city") and opens the listing.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, city := r.PostFormValue("q"), r.PostFormValue("city")
	if !validCity(city) {
		http.Error(w, "invalid city", http.StatusBadRequest)
		return
	}
	h.Board.Do(func(s *app.State) { app.Search(s, query, city) })
	backHome(w, r)
}

// Filters applies the sidebar selection ("city", "category").
func (h *PageHandler) Filters(w http.ResponseWriter, r *http.Request) {
	city, category := r.PostFormValue("city"), r.PostFormValue("category")
	if !validCity(city) || !validCategory(category) {
		http.Error(w, "invalid filter", http.StatusBadRequest)
		return
	}
	h.Board.Do(func(s *app.State) {
		app.SetCity(s, city)
		app.SetCategory(s, category)
	})
	backHome(w, r)
}

// ClearFilters drops the city and category filters.
func (h *PageHandler) ClearFilters(w http.ResponseWriter, r *http.Request) {
	h.Board.Do(app.ClearFilters)
	backHome(w, r)
}

// ResetFilters drops every filter including the search text.
func (h *PageHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	h.Board.Do(app.ResetFilters)
	backHome(w, r)
}

// BrowseCity opens the listing for the city in the URL.
func (h *PageHandler) BrowseCity(w http.ResponseWriter, r *http.Request) {
	city := chi.URLParam(r, "city")
	if !catalog.IsCity(city) {
		http.Error(w, "city not found", http.StatusNotFound)
		return
	}
	h.Board.Do(func(s *app.State) { app.BrowseCity(s, city) })
	backHome(w, r)
}

// ToggleLoginMode flips between the login and registration forms.
func (h *PageHandler) ToggleLoginMode(w http.ResponseWriter, r *http.Request) {
	h.Board.Do(app.ToggleLoginMode)
	backHome(w, r)
}

// Session writes are best-effort: Board logs failures and the transition
// stands, so the handlers below redirect either way.

// Login signs in. Any password is accepted.
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := formValue(r, "email")
	if email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	_ = h.Board.Login(r.Context(), email, r.PostFormValue("password"))
	backHome(w, r)
}

// Register creates a profile and opens the profile editor.
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	fullName, email := formValue(r, "fullName"), formValue(r, "email")
	if fullName == "" || email == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	_ = h.Board.Register(r.Context(), fullName, email, r.PostFormValue("password"))
	backHome(w, r)
}

// Logout signs out.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.Board.Logout(r.Context())
	backHome(w, r)
}

// UpdateProfile saves the profile form. City, skills and bio are all
// required; the city must be one of the catalog cities.
func (h *PageHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	bio, skills, city := formValue(r, "bio"), formValue(r, "skills"), formValue(r, "city")
	if bio == "" || skills == "" || !catalog.IsCity(city) {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	_ = h.Board.UpdateProfile(r.Context(), bio, skills, city)
	backHome(w, r)
}

// Apply runs the application gate for the job in the URL.
func (h *PageHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Board.Apply(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, app.ErrJobNotFound) {
			http.Error(w, "job not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	backHome(w, r)
}

// DismissNotice closes the completion notice.
func (h *PageHandler) DismissNotice(w http.ResponseWriter, r *http.Request) {
	h.Board.Do(app.DismissNotice)
	backHome(w, r)
}

// CompleteFromNotice closes the notice and opens the profile editor.
func (h *PageHandler) CompleteFromNotice(w http.ResponseWriter, r *http.Request) {
	h.Board.Do(app.CompleteFromNotice)
	backHome(w, r)
}
