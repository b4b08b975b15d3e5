package models

import "strings"

// Team identifies one side of a match
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// IsValid checks if the Team is valid
func (t Team) IsValid() bool {
	switch t {
	case TeamA, TeamB:
		return true
	}
	return false
}

// ParseTeam accepts "A"/"B" case-insensitively
func ParseTeam(s string) (Team, bool) {
	t := Team(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.IsValid()
}
