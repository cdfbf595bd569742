package service

import (
	"github.com/atinyakov/pakjobs/internal/catalog"
	"github.com/atinyakov/pakjobs/internal/models"
)

// JobService answers listing queries against the static catalog.
type JobService struct{}

// NewJobService constructs a JobService.
func NewJobService() *JobService {
	return &JobService{}
}

// Search returns the catalog filtered by f, in catalog order.
func (s *JobService) Search(f models.Filters) []models.JobPosting {
	return catalog.Filter(catalog.Jobs(), f)
}

// Featured returns the postings shown on the home page.
func (s *JobService) Featured() []models.JobPosting {
	return catalog.Featured(catalog.FeaturedCount)
}

// Job looks a posting up by ID.
func (s *JobService) Job(id string) (models.JobPosting, bool) {
	return catalog.FindJob(id)
}
