package employee

import (
	"fmt"
	"strings"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Criteria are the dashboard filters. Zero values match everything.
type Criteria struct {
	Name   string
	Gender Gender
	Status string
}

func (c Criteria) match(e Employee) bool {
	if c.Name != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(c.Name)) {
		return false
	}
	if c.Gender != "" && e.Gender != c.Gender {
		return false
	}
	switch c.Status {
	case StatusActive:
		return e.IsActive
	case StatusInactive:
		return !e.IsActive
	}
	return true
}

// Apply returns the records of list matching c, in order. list is not modified.
func (c Criteria) Apply(list []Employee) []Employee {
	out := make([]Employee, 0, len(list))
	for _, e := range list {
		if c.match(e) {
			out = append(out, e)
		}
	}
	return out
}

type Summary struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

func Summarize(list []Employee) Summary {
	s := Summary{Total: len(list)}
	for _, e := range list {
		if e.IsActive {
			s.Active++
		}
	}
	s.Inactive = s.Total - s.Active
	return s
}

// ParseCriteria builds Criteria from raw filter values, rejecting unknown
// gender or status values.
func ParseCriteria(name, gender, status string) (Criteria, error) {
	c := Criteria{Name: name, Gender: Gender(gender), Status: status}
	if c.Gender != "" && !c.Gender.Valid() {
		return Criteria{}, fmt.Errorf("gender must be Male or Female")
	}
	switch c.Status {
	case "", StatusActive, StatusInactive:
	default:
		return Criteria{}, fmt.Errorf("status must be active or inactive")
	}
	return c, nil
}
