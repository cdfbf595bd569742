// Package models defines the core data structures for job postings,
// user profiles and the visitor session.
package models

import "encoding/json"

// EmploymentType defines the set of valid employment type identifiers.
type EmploymentType string

const (
	// FullTime represents a full-time position.
	FullTime EmploymentType = "Full-time"
	// PartTime represents a part-time position.
	PartTime EmploymentType = "Part-time"
	// Contract represents a fixed-term contract position.
	Contract EmploymentType = "Contract"
	// Remote represents a position worked away from the office.
	Remote EmploymentType = "Remote"
)

// JobPosting is a single entry of the job catalog.
type JobPosting struct {
	// ID is the unique identifier for the posting.
	ID string `json:"id"`
	// Title is the position title shown on the card.
	Title string `json:"title"`
	// Company is the hiring organisation.
	Company string `json:"company"`
	// Location is one of the catalog cities (or "Remote").
	Location string `json:"location"`
	// Type is the employment type.
	Type EmploymentType `json:"type"`
	// Category is one of the catalog categories.
	Category string `json:"category"`
	// Salary is a display string, e.g. "80k - 110k PKR".
	Salary string `json:"salary"`
	// PostedAt is a display string, e.g. "2 days ago".
	PostedAt string `json:"postedAt"`
	// Description is a short summary of the role.
	Description string `json:"description"`
	// Logo optionally references the company logo.
	Logo string `json:"logo,omitempty"`
}

// UserProfile is the profile of the visitor.
type UserProfile struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`
	// FullName is the display name.
	FullName string `json:"fullName"`
	// Email is the address the visitor signed in with.
	Email string `json:"email"`
	// City is the home city, empty until the profile is completed.
	City string `json:"city"`
	// IsProfileComplete gates job applications.
	IsProfileComplete bool `json:"isProfileComplete"`
	// Avatar optionally references a picture.
	Avatar string `json:"avatar,omitempty"`
	// Bio is a short free-text introduction.
	Bio string `json:"bio,omitempty"`
	// Skills keeps the order the user typed them in.
	Skills []string `json:"skills,omitempty"`
	// ResumeURL optionally references an uploaded résumé.
	ResumeURL string `json:"resumeUrl,omitempty"`
}

// Session is either anonymous or authenticated with exactly one profile.
// The zero value is anonymous.
type Session struct {
	user *UserProfile
}

// Anonymous returns a session with no user.
func Anonymous() Session {
	return Session{}
}

// Authenticated returns a session owning a copy of u.
func Authenticated(u UserProfile) Session {
	u.Skills = cloneSkills(u.Skills)
	return Session{user: &u}
}

// IsAuthenticated reports whether a user occupies the session slot.
func (s Session) IsAuthenticated() bool {
	return s.user != nil
}

// User returns a copy of the session's user and whether one is present.
func (s Session) User() (UserProfile, bool) {
	if s.user == nil {
		return UserProfile{}, false
	}
	u := *s.user
	u.Skills = cloneSkills(u.Skills)
	return u, true
}

// sessionWire is the persisted layout of a session.
type sessionWire struct {
	User            *UserProfile `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// MarshalJSON writes {"user": ..., "isAuthenticated": ...}, deriving the
// flag from the user slot.
func (s Session) MarshalJSON() ([]byte, error) {
	return json.Marshal(sessionWire{User: s.user, IsAuthenticated: s.user != nil})
}

// UnmarshalJSON reads the persisted layout. The user slot is authoritative;
// a stored flag that disagrees with it is ignored.
func (s *Session) UnmarshalJSON(data []byte) error {
	var w sessionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	s.user = w.User
	return nil
}

func cloneSkills(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Filters is the visitor's current listing filter selection.
// Empty fields mean "no filter".
type Filters struct {
	Query    string `json:"query"`
	City     string `json:"city"`
	Category string `json:"category"`
}

// Page identifies one of the four views.
type Page string

const (
	// PageHome is the landing page with the hero search.
	PageHome Page = "home"
	// PageJobs is the filterable listing.
	PageJobs Page = "jobs"
	// PageProfile is the profile editor.
	PageProfile Page = "profile"
	// PageAuth is the login/registration form.
	PageAuth Page = "auth"
)

// ParsePage converts a raw string to a Page.
func ParsePage(s string) (Page, bool) {
	switch p := Page(s); p {
	case PageHome, PageJobs, PageProfile, PageAuth:
		return p, true
	}
	return "", false
}
