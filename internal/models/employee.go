package models

import "employee-admin/internal/employee"

// CreateEmployeeRequest is the add form. Presence is checked by the store so
// every missing field is reported at once.
type CreateEmployeeRequest struct {
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	DOB      string `json:"dob"`
	State    string `json:"state"`
	Image    string `json:"image"`
	IsActive *bool  `json:"isActive"` // optional, defaults to true
}

func (r CreateEmployeeRequest) Input() employee.Input {
	return employee.Input{
		Name:     r.Name,
		Gender:   employee.Gender(r.Gender),
		DOB:      r.DOB,
		State:    employee.State(r.State),
		Image:    r.Image,
		IsActive: r.IsActive,
	}
}

// UpdateEmployeeRequest is the edit form. Omitted fields keep their value.
type UpdateEmployeeRequest struct {
	Name     *string `json:"name"`
	Gender   *string `json:"gender"`
	DOB      *string `json:"dob"`
	State    *string `json:"state"`
	Image    *string `json:"image"`
	IsActive *bool   `json:"isActive"`
}

func (r UpdateEmployeeRequest) Patch() employee.Patch {
	p := employee.Patch{
		Name:     r.Name,
		DOB:      r.DOB,
		Image:    r.Image,
		IsActive: r.IsActive,
	}
	if r.Gender != nil {
		g := employee.Gender(*r.Gender)
		p.Gender = &g
	}
	if r.State != nil {
		s := employee.State(*r.State)
		p.State = &s
	}
	return p
}

func (r UpdateEmployeeRequest) Empty() bool {
	return r.Name == nil && r.Gender == nil && r.DOB == nil &&
		r.State == nil && r.Image == nil && r.IsActive == nil
}

// StatusRequest sets the active flag. A nil IsActive toggles it.
type StatusRequest struct {
	IsActive *bool `json:"isActive"`
}

type EmployeeListResponse struct {
	Data    []employee.Employee `json:"data"`
	Count   int                 `json:"count"`
	Summary employee.Summary    `json:"summary"`
}
