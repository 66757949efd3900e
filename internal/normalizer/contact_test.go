package normalizer

import "testing"

func TestExtractContactInfoNamePrecedence(t *testing.T) {
	tests := []struct {
		name      string
		blob      string
		wantFirst string
		wantLast  string
	}{
		{
			"full name wins over split fields",
			`{"Full Name": "Grace Brewster Hopper", "firstName": "X", "lastName": "Y"}`,
			"Grace", "Brewster Hopper",
		},
		{
			"camelCase split fields",
			`{"firstName": "Alan", "lastName": "Turing"}`,
			"Alan", "Turing",
		},
		{
			"spaced split fields",
			`{"First Name": "Katherine", "Last Name": "Johnson"}`,
			"Katherine", "Johnson",
		},
		{
			"single word full name",
			`{"Full Name": "Cher"}`,
			"Cher", "",
		},
		{
			"nothing recognizable",
			`{"name_maybe": "nope"}`,
			"", "",
		},
		{
			"partial split pair ignored",
			`{"firstName": "Alan"}`,
			"", "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractContactInfo([]byte(tt.blob))
			if info.FirstName != tt.wantFirst || info.LastName != tt.wantLast {
				t.Errorf("got %q %q, want %q %q", info.FirstName, info.LastName, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestExtractContactInfoFields(t *testing.T) {
	blob := `{
		"Email Address": "x@example.com",
		"Phone": "+31 6 1234",
		"linkedin": "https://linkedin.com/in/x"
	}`

	info := ExtractContactInfo([]byte(blob))
	if info.Email != "x@example.com" {
		t.Errorf("unexpected email: %s", info.Email)
	}
	if info.Phone != "+31 6 1234" {
		t.Errorf("unexpected phone: %s", info.Phone)
	}
	if info.LinkedIn != "https://linkedin.com/in/x" {
		t.Errorf("unexpected linkedin: %s", info.LinkedIn)
	}
}

func TestExtractContactInfoAddressString(t *testing.T) {
	info := ExtractContactInfo([]byte(`{"address": "Main St 1, Springfield"}`))
	if info.Address != "Main St 1, Springfield" {
		t.Errorf("unexpected address: %s", info.Address)
	}
}

func TestExtractContactInfoAddressObject(t *testing.T) {
	blob := `{"address": {"street": "Main St 1", "unit": "Apt 4", "city": "Springfield", "state": "IL", "postalCode": "62701"}}`

	info := ExtractContactInfo([]byte(blob))
	if info.Address != "Main St 1, Apt 4" {
		t.Errorf("unexpected address: %s", info.Address)
	}
	if info.City != "Springfield" || info.State != "IL" || info.PostalCode != "62701" {
		t.Errorf("unexpected address parts: %+v", info)
	}
}

func TestExtractContactInfoAddressZipVariants(t *testing.T) {
	for _, blob := range []string{
		`{"address": {"zip": "1000 AA"}}`,
		`{"address": {"postalCode": "1000 AA"}}`,
		`{"address": {"Postal Code": "1000 AA"}}`,
	} {
		info := ExtractContactInfo([]byte(blob))
		if info.PostalCode != "1000 AA" {
			t.Errorf("blob %s: unexpected postal code %q", blob, info.PostalCode)
		}
	}
}
