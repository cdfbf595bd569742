package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/gate"
	"github.com/atinyakov/pakjobs/internal/models"
)

func fixedID() string { return "fixed-id" }

func mustJob(t *testing.T, id string) models.JobPosting {
	t.Helper()
	j, ok := catalog.FindJob(id)
	require.True(t, ok, "job %s", id)
	return j
}

func TestNewState(t *testing.T) {
	s := NewState(models.Anonymous())
	assert.Equal(t, models.PageHome, s.Page)
	assert.True(t, s.LoginMode)
	assert.Equal(t, models.Filters{}, s.Filters)
	assert.Nil(t, s.Notice)
	assert.False(t, s.NeedsProfile())
}

func TestFilterReducers(t *testing.T) {
	s := NewState(models.Anonymous())

	Search(&s, "react", "Lahore")
	assert.Equal(t, models.PageJobs, s.Page)
	assert.Equal(t, models.Filters{Query: "react", City: "Lahore"}, s.Filters)

	SetCategory(&s, "Design")
	SetCity(&s, "Islamabad")
	assert.Equal(t, models.Filters{Query: "react", City: "Islamabad", Category: "Design"}, s.Filters)

	ClearFilters(&s)
	assert.Equal(t, models.Filters{Query: "react"}, s.Filters)

	Navigate(&s, models.PageHome)
	BrowseCity(&s, "Quetta")
	assert.Equal(t, models.PageJobs, s.Page)
	assert.Equal(t, "Quetta", s.Filters.City)

	ResetFilters(&s)
	assert.Equal(t, models.Filters{}, s.Filters)
}

func TestToggleLoginMode(t *testing.T) {
	s := NewState(models.Anonymous())
	ToggleLoginMode(&s)
	assert.False(t, s.LoginMode)
	ToggleLoginMode(&s)
	assert.True(t, s.LoginMode)
}

func TestLoginGoesHome(t *testing.T) {
	s := NewState(models.Anonymous())
	Navigate(&s, models.PageAuth)
	Login(&s, "ali@example.pk")

	assert.Equal(t, models.PageHome, s.Page)
	assert.True(t, s.Session.IsAuthenticated())
	assert.True(t, s.NeedsProfile())
}

func TestRegisterOpensProfile(t *testing.T) {
	s := NewState(models.Anonymous())
	Register(&s, "Sana Khan", "sana@example.pk", fixedID)

	assert.Equal(t, models.PageProfile, s.Page)
	u, ok := s.Session.User()
	require.True(t, ok)
	assert.Equal(t, "fixed-id", u.ID)
}

func TestUpdateProfileGoesHomeWithFlash(t *testing.T) {
	s := NewState(models.Anonymous())
	Register(&s, "Sana Khan", "sana@example.pk", fixedID)

	require.True(t, UpdateProfile(&s, "bio", "Sales,  Python ,,Management", "Lahore"))
	assert.Equal(t, models.PageHome, s.Page)
	assert.False(t, s.NeedsProfile())
	assert.Equal(t, ProfileSavedFlash, TakeFlash(&s))
	assert.Empty(t, TakeFlash(&s))

	u, _ := s.Session.User()
	assert.Equal(t, []string{"Sales", "Python", "Management"}, u.Skills)
}

func TestUpdateProfileAnonymousIsNoop(t *testing.T) {
	s := NewState(models.Anonymous())
	Navigate(&s, models.PageProfile)

	assert.False(t, UpdateProfile(&s, "bio", "Go", "Lahore"))
	assert.Equal(t, models.PageProfile, s.Page)
	assert.Empty(t, s.Flash)
	assert.False(t, s.Session.IsAuthenticated())
}

func TestApply(t *testing.T) {
	job := mustJob(t, "3")

	t.Run("anonymous redirects to auth", func(t *testing.T) {
		s := NewState(models.Anonymous())
		d := Apply(&s, job)
		assert.Equal(t, gate.RedirectToAuth, d.Outcome)
		assert.Equal(t, models.PageAuth, s.Page)
		assert.Nil(t, s.Notice)
	})

	t.Run("incomplete profile shows notice", func(t *testing.T) {
		s := NewState(models.Anonymous())
		Login(&s, "ali@example.pk")
		d := Apply(&s, job)
		assert.Equal(t, gate.ShowCompletionNotice, d.Outcome)
		assert.Equal(t, "UI/UX Designer", d.JobTitle)
		require.NotNil(t, s.Notice)
		assert.Equal(t, "3", s.Notice.ID)
		assert.Equal(t, models.PageHome, s.Page)

		CompleteFromNotice(&s)
		assert.Nil(t, s.Notice)
		assert.Equal(t, models.PageProfile, s.Page)
	})

	t.Run("complete profile is accepted", func(t *testing.T) {
		s := NewState(models.Anonymous())
		Login(&s, "ali@example.pk")
		UpdateProfile(&s, "bio", "Go", "Lahore")
		TakeFlash(&s)

		d := Apply(&s, job)
		assert.Equal(t, gate.ApplyAccepted, d.Outcome)
		assert.Equal(t, "Application sent for UI/UX Designer! Good luck.", TakeFlash(&s))
	})
}

func TestDismissNotice(t *testing.T) {
	s := NewState(models.Anonymous())
	Login(&s, "ali@example.pk")
	Apply(&s, mustJob(t, "1"))
	require.NotNil(t, s.Notice)

	DismissNotice(&s)
	assert.Nil(t, s.Notice)
	assert.Equal(t, models.PageHome, s.Page)
}

func TestLogoutClearsNoticeAndThenRedirects(t *testing.T) {
	s := NewState(models.Anonymous())
	Login(&s, "ali@example.pk")
	Apply(&s, mustJob(t, "1"))
	require.NotNil(t, s.Notice)

	Logout(&s)
	assert.Nil(t, s.Notice)
	assert.Equal(t, models.PageHome, s.Page)
	assert.False(t, s.Session.IsAuthenticated())

	for _, job := range catalog.Jobs() {
		st := s
		d := Apply(&st, job)
		assert.Equal(t, gate.RedirectToAuth, d.Outcome, job.ID)
		assert.Nil(t, st.Notice)
	}
}
