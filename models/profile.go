// File: models/profile.go
package models

import "fmt"

// ProfileField enumerates the single fields an edit_profile request may
// update. Unknown field names are rejected at the boundary rather than
// silently ignored.
type ProfileField string

const (
	FieldEmail    ProfileField = "email"
	FieldPhone    ProfileField = "phone"
	FieldLocation ProfileField = "location"
	FieldBio      ProfileField = "bio"
	FieldSkills   ProfileField = "skills"
	FieldPassword ProfileField = "password"
	FieldOrgName  ProfileField = "name"
	FieldAddress  ProfileField = "address"
	FieldWebsite  ProfileField = "website_url"
)

var volunteerFields = map[ProfileField]bool{
	FieldEmail:    true,
	FieldPhone:    true,
	FieldLocation: true,
	FieldBio:      true,
	FieldSkills:   true,
	FieldPassword: true,
}

var organisationFields = map[ProfileField]bool{
	FieldEmail:    true,
	FieldPassword: true,
	FieldOrgName:  true,
	FieldAddress:  true,
	FieldWebsite:  true,
}

// ParseProfileField validates a field tag against the given user type
// ("volunteer" or "organisation").
func ParseProfileField(userType, raw string) (ProfileField, error) {
	field := ProfileField(raw)
	switch userType {
	case "volunteer":
		if volunteerFields[field] {
			return field, nil
		}
	case "organisation":
		if organisationFields[field] {
			return field, nil
		}
	}
	return "", fmt.Errorf("unknown profile field %q for %s", raw, userType)
}
