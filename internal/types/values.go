package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Skill is a skills entry. Bare strings decode into a Skill with only Name set.
type Skill struct {
	Name     string `json:"name,omitempty"`
	Level    string `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// UnmarshalJSON accepts either a string or an object
func (s *Skill) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var name string
		if err := json.Unmarshal(trimmed, &name); err != nil {
			return err
		}
		*s = Skill{Name: name}
		return nil
	}

	type plain Skill
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return fmt.Errorf("skill must be a string or an object: %w", err)
	}
	*s = Skill(p)
	return nil
}

// Label returns "name (level)" when a level is present, else the name
func (s Skill) Label() string {
	if s.Name != "" && s.Level != "" {
		return s.Name + " (" + s.Level + ")"
	}
	return s.Name
}

// Date is a date as written in the CV, e.g. "2024-01", "2024-01-15" or 2024
type Date string

// UnmarshalJSON accepts a string or a number (bare years)
func (d *Date) UnmarshalJSON(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*d = Date(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("date must be a string or a number: %w", err)
	}
	*d = Date(strconv.FormatFloat(n, 'f', -1, 64))
	return nil
}

func (d Date) String() string {
	return string(d)
}
