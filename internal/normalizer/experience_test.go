package normalizer

import "testing"

func TestExtractWorkExperienceKeyPrecedence(t *testing.T) {
	blob := `{
		"Work Experience": [{"jobTitle": "Primary", "company": "A"}],
		"work_experience": [{"jobTitle": "Fallback", "company": "B"}]
	}`

	entries := ExtractWorkExperience([]byte(blob))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].JobTitle != "Primary" {
		t.Errorf("expected canonical key to win, got %s", entries[0].JobTitle)
	}
}

func TestExtractWorkExperienceFallbackKeys(t *testing.T) {
	for _, key := range []string{"work_experience", "workExperience", "jobs", "positions", "employment_history"} {
		blob := `{"` + key + `": [{"jobTitle": "Engineer", "company": "Acme"}]}`
		entries := ExtractWorkExperience([]byte(blob))
		if len(entries) != 1 || entries[0].Company != "Acme" {
			t.Errorf("key %s: expected 1 entry for Acme, got %+v", key, entries)
		}
	}
}

func TestExtractWorkExperienceLastResortScan(t *testing.T) {
	blob := `{
		"metadata": {"parser": "v3"},
		"stuff": ["not", "objects"],
		"history": [{"position": "Developer", "employer": "Initech"}]
	}`

	entries := ExtractWorkExperience([]byte(blob))
	if len(entries) != 1 {
		t.Fatalf("expected last-resort scan to find the array, got %d entries", len(entries))
	}
	if entries[0].JobTitle != "Developer" || entries[0].Company != "Initech" {
		t.Errorf("unexpected entry: %+v", entries[0])
	}
}

func TestExtractWorkExperienceNestedDates(t *testing.T) {
	blob := `{"jobs": [{"jobTitle": "Engineer", "dates": {"startDate": "2021-03", "isCurrent": true}}]}`

	entries := ExtractWorkExperience([]byte(blob))
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].StartDate != "2021-03" {
		t.Errorf("unexpected start date: %s", entries[0].StartDate)
	}
	if entries[0].EndDate != "Present" {
		t.Errorf("expected Present end date for current role, got %s", entries[0].EndDate)
	}
}

func TestExtractWorkExperienceResponsibilities(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		blob := `{"jobs": [{"jobTitle": "X", "responsibilities": ["Built APIs", " Led team ", ""]}]}`
		entries := ExtractWorkExperience([]byte(blob))
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		got := entries[0].Responsibilities
		if len(got) != 2 || got[0] != "Built APIs" || got[1] != "Led team" {
			t.Errorf("unexpected responsibilities: %v", got)
		}
	})

	t.Run("description splitting", func(t *testing.T) {
		blob := `{"jobs": [{"jobTitle": "X", "description": "Built APIs\n• Led team • Shipped features"}]}`
		entries := ExtractWorkExperience([]byte(blob))
		got := entries[0].Responsibilities
		if len(got) != 3 {
			t.Fatalf("expected 3 items, got %v", got)
		}
		if got[1] != "Led team" {
			t.Errorf("unexpected split: %v", got)
		}
	})
}

func TestExtractWorkExperienceIDs(t *testing.T) {
	blob := `{"jobs": [{"jobTitle": "A"}, {"jobTitle": "B"}, {"jobTitle": "C"}]}`

	entries := ExtractWorkExperience([]byte(blob))
	for i, want := range []string{"exp-0", "exp-1", "exp-2"} {
		if entries[i].ID != want {
			t.Errorf("entry %d: expected id %s, got %s", i, want, entries[i].ID)
		}
	}
}

func TestExtractWorkExperienceNone(t *testing.T) {
	entries := ExtractWorkExperience([]byte(`{"Skills": ["Go"]}`))
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
