package models

import (
	"encoding/json"
	"fmt"
)

// MinuteOfDay is a time of day expressed as minutes from midnight.
// It marshals as "HH:MM" on the wire; lexical order of the formatted
// form equals numeric order of the value.
type MinuteOfDay int

// ParseMinuteOfDay parses an "HH:MM" string (24-hour clock).
func ParseMinuteOfDay(s string) (MinuteOfDay, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return MinuteOfDay(h*60 + m), nil
}

func (m MinuteOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

func (m MinuteOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *MinuteOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseMinuteOfDay(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
