package employee

import "strings"

type Gender string

const (
	Male   Gender = "Male"
	Female Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == Male || g == Female
}

type State string

const (
	Karnataka State = "Karnataka"
	TamilNadu State = "Tamil Nadu"
	Kerala    State = "Kerala"
)

func (s State) Valid() bool {
	switch s {
	case Karnataka, TamilNadu, Kerala:
		return true
	default:
		return false
	}
}

// Employee is a single record of the collection. The JSON names match the
// snapshot written by the browser dashboard so old exports load unchanged.
type Employee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Gender   Gender `json:"gender"`
	DOB      string `json:"dob"`
	State    State  `json:"state"`
	Image    string `json:"image,omitempty"`
	IsActive bool   `json:"isActive"`
}

// Input carries the mutable fields of a new record.
// IsActive is a pointer so an omitted value can default to true.
type Input struct {
	Name     string
	Gender   Gender
	DOB      string
	State    State
	Image    string
	IsActive *bool
}

// Patch replaces the fields that are non-nil and keeps the rest.
type Patch struct {
	Name     *string
	Gender   *Gender
	DOB      *string
	State    *State
	Image    *string
	IsActive *bool
}

func (p Patch) apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = strings.TrimSpace(*p.Name)
	}
	if p.Gender != nil {
		e.Gender = *p.Gender
	}
	if p.DOB != nil {
		e.DOB = strings.TrimSpace(*p.DOB)
	}
	if p.State != nil {
		e.State = *p.State
	}
	if p.Image != nil {
		e.Image = *p.Image
	}
	if p.IsActive != nil {
		e.IsActive = *p.IsActive
	}
	return e
}

func (in Input) record(id int64) Employee {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	return Employee{
		ID:       id,
		Name:     strings.TrimSpace(in.Name),
		Gender:   in.Gender,
		DOB:      strings.TrimSpace(in.DOB),
		State:    in.State,
		Image:    in.Image,
		IsActive: active,
	}
}
