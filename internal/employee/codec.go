package employee

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the collection as a JSON array, preserving order.
func Encode(list []Employee) ([]byte, error) {
	if list == nil {
		list = []Employee{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decode parses a snapshot written by Encode. Empty input is an empty collection.
func Decode(b []byte) ([]Employee, error) {
	if len(b) == 0 {
		return []Employee{}, nil
	}
	var list []Employee
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if list == nil {
		list = []Employee{}
	}
	return list, nil
}
