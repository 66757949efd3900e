package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"

	"talexu-jobs/pkg/models"
)

// ExtractContactInfo derives the contact section from a parsed-resume blob.
// Name resolution tries "Full Name", then firstName/lastName, then
// "First Name"/"Last Name"; first match wins. Email, phone and LinkedIn are
// probed independently across their known key variants.
func ExtractContactInfo(data []byte) models.ContactInfo {
	var info models.ContactInfo

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return info
	}

	if full := root.Get("Full Name"); full.Type == gjson.String && full.String() != "" {
		parts := strings.Fields(full.String())
		if len(parts) > 0 {
			info.FirstName = parts[0]
			info.LastName = strings.Join(parts[1:], " ")
		}
	} else if root.Get("firstName").String() != "" && root.Get("lastName").String() != "" {
		info.FirstName = root.Get("firstName").String()
		info.LastName = root.Get("lastName").String()
	} else if root.Get("First Name").String() != "" && root.Get("Last Name").String() != "" {
		info.FirstName = root.Get("First Name").String()
		info.LastName = root.Get("Last Name").String()
	}

	info.Email = probeString(root, "email", "Email", "Email Address")
	info.Phone = probeString(root, "phone", "Phone", "Phone Number")
	info.LinkedIn = probeString(root, "linkedin", "LinkedIn", "LinkedIn URL")

	if address := root.Get("address"); address.Exists() {
		switch {
		case address.Type == gjson.String:
			info.Address = address.String()
		case address.IsObject():
			info.City = probeString(address, "city", "City")
			info.State = probeString(address, "state", "State")
			info.PostalCode = probeString(address, "zip", "postalCode", "Postal Code")

			street := probeString(address, "street", "Street")
			unit := probeString(address, "unit", "Unit")
			if unit != "" {
				info.Address = street + ", " + unit
			} else {
				info.Address = street
			}
		}
	}

	return info
}
