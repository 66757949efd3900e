// Package normalizer derives structured resume data from the opaque blobs
// produced by the upstream resume parser. The parser's output schema is
// unstable across versions and providers, so every extractor is an ordered
// cascade of candidate keys rather than a single schema read. Extractors are
// pure, never panic, and return empty values when nothing recognizable is
// present.
package normalizer

import (
	"github.com/tidwall/gjson"

	"talexu-jobs/pkg/models"
)

// NormalizeProfile runs every extractor over one parsed-resume blob
func NormalizeProfile(data []byte) *models.ResumeProfile {
	return &models.ResumeProfile{
		Contact:        ExtractContactInfo(data),
		WorkExperience: ExtractWorkExperience(data),
		Education:      ExtractEducation(data),
		Skills:         ExtractSkills(data),
	}
}

// probeString returns the first non-empty string among the candidate keys
func probeString(root gjson.Result, keys ...string) string {
	for _, key := range keys {
		if v := root.Get(key); v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// probeArray returns the first array found among the candidate keys, looking
// at both the top level and a nested "data" object (some parser versions
// wrap their payload)
func probeArray(root gjson.Result, keys ...string) (gjson.Result, bool) {
	for _, key := range keys {
		if v := root.Get(key); v.IsArray() {
			return v, true
		}
		if v := root.Get("data").Get(key); v.IsArray() {
			return v, true
		}
	}
	return gjson.Result{}, false
}
