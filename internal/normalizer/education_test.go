package normalizer

import "testing"

func TestExtractEducationBasic(t *testing.T) {
	blob := `{"Education": [
		{"school": "MIT", "degree": "MSc", "fieldOfStudy": "CS", "startDate": "2018", "endDate": "2020"}
	]}`

	entries := ExtractEducation([]byte(blob))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.ID != "edu-0" || e.School != "MIT" || e.Degree != "MSc" || e.FieldOfStudy != "CS" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.StartDate != "2018" || e.EndDate != "2020" {
		t.Errorf("unexpected dates: %s - %s", e.StartDate, e.EndDate)
	}
}

func TestExtractEducationFallbackKeys(t *testing.T) {
	for _, key := range []string{"education", "education_history", "schools", "qualifications"} {
		blob := `{"` + key + `": [{"institution": "Oxford", "degree": "BA"}]}`
		entries := ExtractEducation([]byte(blob))
		if len(entries) != 1 || entries[0].School != "Oxford" {
			t.Errorf("key %s: expected Oxford entry, got %+v", key, entries)
		}
	}
}

func TestExtractEducationYearRange(t *testing.T) {
	tests := []struct {
		year      string
		wantStart string
		wantEnd   string
	}{
		{"2015 - 2019", "2015", "2019"},
		{"2021", "2021", "Present"},
	}

	for _, tt := range tests {
		blob := `{"Education": [{"school": "X", "Year": "` + tt.year + `"}]}`
		entries := ExtractEducation([]byte(blob))
		if len(entries) != 1 {
			t.Fatalf("Year %q: expected 1 entry", tt.year)
		}
		if entries[0].StartDate != tt.wantStart || entries[0].EndDate != tt.wantEnd {
			t.Errorf("Year %q: got %s - %s, want %s - %s",
				tt.year, entries[0].StartDate, entries[0].EndDate, tt.wantStart, tt.wantEnd)
		}
	}
}

func TestExtractEducationNestedDates(t *testing.T) {
	blob := `{"Education": [{"school": "X", "dates": {"startDate": "2022", "isCurrent": true}}]}`

	entries := ExtractEducation([]byte(blob))
	if entries[0].EndDate != "Present" {
		t.Errorf("expected Present for current study, got %s", entries[0].EndDate)
	}
}

func TestExtractEducationNone(t *testing.T) {
	entries := ExtractEducation([]byte(`{"jobs": []}`))
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
