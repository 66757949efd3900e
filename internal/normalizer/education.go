package normalizer

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"talexu-jobs/pkg/models"
)

// Fallback keys checked, in order, when the canonical "Education" key is
// absent.
var educationKeys = []string{
	"education", "educations", "education_history", "educational_background",
	"academic_history", "schools", "degrees", "qualifications",
}

// ExtractEducation derives the education entries from a parsed-resume blob
func ExtractEducation(data []byte) []models.EducationEntry {
	entries := []models.EducationEntry{}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return entries
	}

	arr, ok := probeArray(root, append([]string{"Education"}, educationKeys...)...)
	if !ok {
		return entries
	}

	arr.ForEach(func(_, item gjson.Result) bool {
		entries = append(entries, normalizeEducation(item, len(entries)))
		return true
	})

	return entries
}

// normalizeEducation maps one raw entry onto the normalized shape
func normalizeEducation(item gjson.Result, index int) models.EducationEntry {
	entry := models.EducationEntry{
		ID:           fmt.Sprintf("edu-%d", index),
		School:       probeString(item, "school", "institution", "Institution", "university"),
		Degree:       probeString(item, "degree", "Degree"),
		FieldOfStudy: probeString(item, "fieldOfStudy", "major", "field", "Field of Study"),
		Description:  probeString(item, "description"),
	}

	entry.StartDate, entry.EndDate = extractEducationDates(item)

	return entry
}

// extractEducationDates handles the nested dates object, a combined
// "Year" range formatted as "<start> - <end>", and top-level date fields
func extractEducationDates(item gjson.Result) (start, end string) {
	if dates := item.Get("dates"); dates.IsObject() {
		start = probeString(dates, "startDate", "start_date")
		end = probeString(dates, "endDate", "end_date")
		if end == "" && dates.Get("isCurrent").Bool() {
			end = "Present"
		}
		return start, end
	}

	if year := item.Get("Year"); year.Type == gjson.String && year.String() != "" {
		parts := strings.SplitN(year.String(), " - ", 2)
		start = parts[0]
		if len(parts) > 1 {
			end = parts[1]
		} else {
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
