package model

import "encoding/json"

// CredibilityLevel is the discrete band derived from the overall score.
type CredibilityLevel int

const (
	LevelVeryLow CredibilityLevel = iota
	LevelLow
	LevelMedium
	LevelHigh
)

func (l CredibilityLevel) String() string {
	switch l {
	case LevelHigh:
		return "High"
	case LevelMedium:
		return "Medium"
	case LevelLow:
		return "Low"
	default:
		return "Very Low"
	}
}

// MarshalJSON serializes the level as its display string so API consumers
// see "High"/"Medium"/"Low"/"Very Low" rather than bare integers.
func (l CredibilityLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts the display-string form.
func (l *CredibilityLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "High":
		*l = LevelHigh
	case "Medium":
		*l = LevelMedium
	case "Low":
		*l = LevelLow
	default:
		*l = LevelVeryLow
	}
	return nil
}
