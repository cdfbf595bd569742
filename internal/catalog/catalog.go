// Package catalog holds the immutable job catalog and the reference lists
// of cities and categories, and filters the catalog by the visitor's
// selection.
package catalog

import (
	"slices"
	"strings"

	"github.com/atinyakov/pakjobs/internal/models"
)

// FeaturedCount is the number of postings shown on the home page.
const FeaturedCount = 9

// Jobs returns a copy of the full catalog in catalog order.
func Jobs() []models.JobPosting {
	return slices.Clone(jobs)
}

// Featured returns the first n postings of the catalog.
func Featured(n int) []models.JobPosting {
	if n < 0 {
		n = 0
	}
	return slices.Clone(jobs[:min(n, len(jobs))])
}

// FindJob looks a posting up by ID.
func FindJob(id string) (models.JobPosting, bool) {
	for _, j := range jobs {
		if j.ID == id {
			return j, true
		}
	}
	return models.JobPosting{}, false
}

// Cities returns the selectable cities.
func Cities() []string { return slices.Clone(cities) }

// FeaturedCities returns the cities shown as "Browse by City" tiles.
func FeaturedCities() []string { return slices.Clone(featuredCities) }

// Categories returns the selectable job categories.
func Categories() []string { return slices.Clone(categories) }

// IsCity reports whether c is one of the selectable cities.
func IsCity(c string) bool { return slices.Contains(cities, c) }

// IsCategory reports whether c is one of the job categories.
func IsCategory(c string) bool { return slices.Contains(categories, c) }

// Filter returns the postings of src matching every non-empty field of f,
// in their original order.
//
// Query matches case-insensitively as a substring of the title or the
// company. City and Category must match exactly.
func Filter(src []models.JobPosting, f models.Filters) []models.JobPosting {
	q := strings.ToLower(f.Query)
	out := make([]models.JobPosting, 0, len(src))
	for _, j := range src {
		if q != "" &&
			!strings.Contains(strings.ToLower(j.Title), q) &&
			!strings.Contains(strings.ToLower(j.Company), q) {
			continue
		}
		if f.City != "" && j.Location != f.City {
			continue
		}
		if f.Category != "" && j.Category != f.Category {
			continue
		}
		out = append(out, j)
	}
	return out
}
