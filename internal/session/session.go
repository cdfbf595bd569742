// Package session implements the visitor's authentication transitions.
//
// Every transition returns a new models.Session; none of them touch
// persistence. Authentication is a demo: no credential is checked.
package session

import (
	"strings"

	"github.com/atinyakov/pakjobs/internal/models"
)

// Demo identity handed out by Login.
const (
	DemoUserID   = "1"
	DemoFullName = "Muhammad Ali"
	DemoCity     = "Karachi"
)

// Login signs the visitor in as the fixed demo identity, keeping only the
// supplied email. Any password is accepted.
func Login(email string) models.Session {
	return models.Authenticated(models.UserProfile{
		ID:       DemoUserID,
		FullName: DemoFullName,
		Email:    email,
		City:     DemoCity,
		Skills:   []string{},
	})
}

// Register creates a fresh, incomplete profile. newID supplies the
// identifier.
func Register(fullName, email string, newID func() string) models.Session {
	return models.Authenticated(models.UserProfile{
		ID:       newID(),
		FullName: fullName,
		Email:    email,
	})
}

// Logout returns an anonymous session.
func Logout() models.Session {
	return models.Anonymous()
}

// UpdateProfile applies the profile form to the signed-in user and marks
// the profile complete. It reports false and returns s unchanged when
// nobody is signed in.
func UpdateProfile(s models.Session, bio, skillsText, city string) (models.Session, bool) {
	u, ok := s.User()
	if !ok {
		return s, false
	}
	u.Bio = bio
	u.Skills = ParseSkills(skillsText)
	u.City = city
	u.IsProfileComplete = true
	return models.Authenticated(u), true
}

// ParseSkills splits a comma separated list, trimming each entry and
// dropping empty ones. Duplicates are kept.
func ParseSkills(text string) []string {
	skills := []string{}
	for _, s := range strings.Split(text, ",") {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

// JoinSkills renders skills the way the profile form expects them.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
