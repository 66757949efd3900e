package jobsource

import (
	"fmt"
	"math/rand"
	"time"

	"talexu-jobs/pkg/models"
)

const mockJobCount = 25

// Fixed rotations for synthetic records. Kept in sync with what the product
// shipped so degraded-mode results stay recognizable in the UI.
var mockCompanies = []string{
	"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Tesla", "Spotify",
}

var mockDescriptions = []string{
	"We are looking for a talented professional to join our dynamic team and contribute to cutting-edge projects.",
	"Join our innovative company and work on exciting challenges that impact millions of users worldwide.",
	"Seeking a motivated individual to help drive our mission forward with creativity and technical excellence.",
	"Be part of a collaborative environment where your skills will make a real difference in our products.",
	"Opportunity to work with industry-leading technologies and contribute to groundbreaking solutions.",
}

// GenerateMockJobs produces the deterministic synthetic dataset used whenever
// the scraper upstream is unavailable. Always exactly 25 records, companies
// and descriptions assigned round-robin.
func GenerateMockJobs(jobTitle, location string) []models.JobRecord {
	now := time.Now()
	jobs := make([]models.JobRecord, 0, mockJobCount)

	for i := 0; i < mockJobCount; i++ {
		daysAgo := rand.Intn(30) + 1

		jobs = append(jobs, models.JobRecord{
			JobID:       fmt.Sprintf("mock_%d_%d", now.UnixMilli(), i),
			JobTitle:    jobTitle,
			Company:     mockCompanies[i%len(mockCompanies)],
			Location:    location,
			Description: mockDescriptions[i%len(mockDescriptions)],
			SalaryText:  "$80,000 - $120,000",
			PostedText:  postedText(daysAgo),
			PostedDate:  now.AddDate(0, 0, -daysAgo),
			JobURL:      fmt.Sprintf("https://example.com/job/%d", i),
			CreatedAt:   now,
		})
	}

	return jobs
}

// postedText maps a days-ago count onto the human strings the job boards use
func postedText(daysAgo int) string {
	switch {
	case daysAgo == 1:
		return "1 day ago"
	case daysAgo <= 7:
		return fmt.Sprintf("%d days ago", daysAgo)
	case daysAgo <= 14:
		return "1 week ago"
	case daysAgo <= 21:
		return "2 weeks ago"
	case daysAgo <= 28:
		return "3 weeks ago"
	default:
		return "1 month ago"
	}
}
