package employee

import "strings"

// Validate checks the required fields of a record. It returns nil or a
// *ValidationError naming every failing field.
func Validate(e Employee) error {
	fields := map[string]string{}

	if strings.TrimSpace(e.Name) == "" {
		fields["name"] = "Full Name is required"
	}
	switch {
	case e.Gender == "":
		fields["gender"] = "Gender is required"
	case !e.Gender.Valid():
		fields["gender"] = "Gender must be Male or Female"
	}
	if strings.TrimSpace(e.DOB) == "" {
		fields["dob"] = "Date of Birth is required"
	}
	switch {
	case e.State == "":
		fields["state"] = "State is required"
	case !e.State.Valid():
		fields["state"] = "State must be Karnataka, Tamil Nadu or Kerala"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
