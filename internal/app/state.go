// Package app holds the visitor's application state and the reducers that
// move it between pages in response to user actions.
//
// Reducers are plain functions over *State. They never touch persistence;
// Board wires them to the session store.
package app

import (
	"fmt"

	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
	"github.com/atinyakov/pakjobs/internal/session"
)

// Confirmation messages shown once after an action.
const (
	ProfileSavedFlash = "Shabash! Profile updated. Now you can apply for any job."
	appliedFlashFmt   = "Application sent for %s! Good luck."
)

// State is everything the view layer renders from.
type State struct {
	Page    models.Page
	Session models.Session
	Filters models.Filters
	// Notice is the job whose application is waiting on profile completion.
	Notice *models.JobPosting
	// LoginMode selects the login form over the registration form.
	LoginMode bool
	// Flash is a one-shot confirmation message.
	Flash string
}

// NewState returns the start-up state for sess.
func NewState(sess models.Session) State {
	return State{
		Page:      models.PageHome,
		Session:   sess,
		LoginMode: true,
	}
}

// NeedsProfile reports whether the "complete your profile" banner applies.
func (s *State) NeedsProfile() bool {
	u, ok := s.Session.User()
	return ok && !u.IsProfileComplete
}

// Navigate switches to page.
func Navigate(s *State, page models.Page) {
	s.Page = page
}

// Search applies the hero search box and opens the listing.
func Search(s *State, query, city string) {
	s.Filters.Query = query
	s.Filters.City = city
	s.Page = models.PageJobs
}

// BrowseCity selects city and opens the listing.
func BrowseCity(s *State, city string) {
	s.Filters.City = city
	s.Page = models.PageJobs
}

// SetCity changes the city filter.
func SetCity(s *State, city string) {
	s.Filters.City = city
}

// SetCategory changes the category filter.
func SetCategory(s *State, category string) {
	s.Filters.Category = category
}

// ClearFilters drops the city and category filters, keeping the query.
func ClearFilters(s *State) {
	s.Filters.City = ""
	s.Filters.Category = ""
}

// ResetFilters drops every filter.
func ResetFilters(s *State) {
	s.Filters = models.Filters{}
}

// ToggleLoginMode flips between the login and registration forms.
func ToggleLoginMode(s *State) {
	s.LoginMode = !s.LoginMode
}

// Login signs in as the demo identity and returns home.
func Login(s *State, email string) {
	s.Session = session.Login(email)
	s.Page = models.PageHome
}

// Register creates a new profile and opens the profile editor.
func Register(s *State, fullName, email string, newID func() string) {
	s.Session = session.Register(fullName, email, newID)
	s.Page = models.PageProfile
}

// Logout signs out, returns home and drops any pending notice.
func Logout(s *State) {
	s.Session = session.Logout()
	s.Page = models.PageHome
	s.Notice = nil
}

// UpdateProfile saves the profile form and returns home. It reports false,
// leaving s untouched, when nobody is signed in.
func UpdateProfile(s *State, bio, skillsText, city string) bool {
	next, ok := session.UpdateProfile(s.Session, bio, skillsText, city)
	if !ok {
		return false
	}
	s.Session = next
	s.Page = models.PageHome
	s.Flash = ProfileSavedFlash
	return true
}

// Apply runs the application gate for job and acts on its decision.
func Apply(s *State, job models.JobPosting) gate.Decision {
	d := gate.Decide(s.Session, job)
	switch d.Outcome {
	case gate.RedirectToAuth:
		s.Page = models.PageAuth
	case gate.ShowCompletionNotice:
		s.Notice = &job
	case gate.ApplyAccepted:
		s.Flash = fmt.Sprintf(appliedFlashFmt, job.Title)
	}
	return d
}

// DismissNotice closes the completion notice.
func DismissNotice(s *State) {
	s.Notice = nil
}

// CompleteFromNotice closes the notice and opens the profile editor.
func CompleteFromNotice(s *State) {
	s.Notice = nil
	s.Page = models.PageProfile
}

// TakeFlash returns the pending flash message and clears it.
func TakeFlash(s *State) string {
	f := s.Flash
	s.Flash = ""
	return f
}
