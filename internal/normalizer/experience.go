package normalizer

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"talexu-jobs/pkg/models"
)

// Fallback keys checked, in order, when the canonical "Work Experience" key
// is absent. Observed across parser versions.
var experienceKeys = []string{
	"work experience",
	"work_experience", "workExperience", "work_experiences",
	"jobs", "positions", "experience", "professional_experience",
	"employmentHistory", "employment_history",
}

// Fields whose presence on an array's first element marks it as job-like,
// used by the last-resort scan.
var jobLikeFields = []string{
	"jobTitle", "company", "position", "Job Title", "Company",
	"title", "employer", "organization",
}

// ExtractWorkExperience derives the work-experience entries from a
// parsed-resume blob. Probes "Work Experience" first, then the fallback key
// list, then scans every top-level array for one whose first element looks
// job-like.
func ExtractWorkExperience(data []byte) []models.WorkExperienceEntry {
	entries := []models.WorkExperienceEntry{}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return entries
	}

	arr, ok := probeArray(root, append([]string{"Work Experience"}, experienceKeys...)...)
	if !ok {
		arr, ok = scanForJobArray(root)
	}
	if !ok {
		return entries
	}

	arr.ForEach(func(_, item gjson.Result) bool {
		entries = append(entries, normalizeExperience(item, len(entries)))
		return true
	})

	return entries
}

// scanForJobArray is the last resort: the first top-level array whose first
// element exposes a job-like field
func scanForJobArray(root gjson.Result) (gjson.Result, bool) {
	var found gjson.Result
	ok := false

	root.ForEach(func(_, value gjson.Result) bool {
		if !value.IsArray() {
			return true
		}
		items := value.Array()
		if len(items) == 0 || !items[0].IsObject() {
			return true
		}
		for _, field := range jobLikeFields {
			if items[0].Get(field).Exists() {
				found = value
				ok = true
				return false
			}
		}
		return true
	})

	return found, ok
}

// normalizeExperience maps one raw entry onto the normalized shape
func normalizeExperience(item gjson.Result, index int) models.WorkExperienceEntry {
	entry := models.WorkExperienceEntry{
		ID:       fmt.Sprintf("exp-%d", index),
		JobTitle: probeString(item, "jobTitle", "title", "position", "Job Title"),
		Company:  probeString(item, "company", "employer", "organization", "Company"),
		Location: probeString(item, "location"),
	}

	entry.StartDate, entry.EndDate = extractDates(item)
	entry.Responsibilities = extractResponsibilities(item)

	return entry
}

// extractDates supports both a nested dates object and top-level date
// fields; isCurrent maps the end date to "Present"
func extractDates(item gjson.Result) (start, end string) {
	if dates := item.Get("dates"); dates.IsObject() {
		start = probeString(dates, "startDate", "start_date")
		end = probeString(dates, "endDate", "end_date")
		if end == "" && dates.Get("isCurrent").Bool() {
			end = "Present"
		}
		return start, end
	}

	start = probeString(item, "startDate", "start_date")
	end = probeString(item, "endDate", "end_date")
	if end == "" && item.Get("isCurrent").Bool() {
		end = "Present"
	}
	return start, end
}

// extractResponsibilities takes the responsibilities array when present and
// otherwise splits free-form description text on newlines and bullets
func extractResponsibilities(item gjson.Result) []string {
	out := []string{}

	if arr := item.Get("responsibilities"); arr.IsArray() {
		arr.ForEach(func(_, v gjson.Result) bool {
			if s := strings.TrimSpace(v.String()); s != "" {
				out = append(out, s)
			}
			return true
		})
		return out
	}

	text := probeString(item, "description", "jobDescription", "text")
	if text == "" {
		return out
	}

	for _, part := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '•'
	}) {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
