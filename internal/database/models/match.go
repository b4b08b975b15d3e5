package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Teams is the roster of a match. A player id appears at most once across both sides.
type Teams struct {
	TeamA []uuid.UUID `json:"teamA"`
	TeamB []uuid.UUID `json:"teamB"`
}

// Side returns the member list for the given team
func (t Teams) Side(team Team) []uuid.UUID {
	switch team {
	case TeamA:
		return t.TeamA
	case TeamB:
		return t.TeamB
	}
	return nil
}

// TeamOf reports which side a player is on, if any
func (t Teams) TeamOf(playerID uuid.UUID) (Team, bool) {
	if slices.Contains(t.TeamA, playerID) {
		return TeamA, true
	}
	if slices.Contains(t.TeamB, playerID) {
		return TeamB, true
	}
	return "", false
}

// Contains reports whether the player is on either side
func (t Teams) Contains(playerID uuid.UUID) bool {
	_, ok := t.TeamOf(playerID)
	return ok
}

// Members returns team A followed by team B
func (t Teams) Members() []uuid.UUID {
	members := make([]uuid.UUID, 0, len(t.TeamA)+len(t.TeamB))
	members = append(members, t.TeamA...)
	return append(members, t.TeamB...)
}

// With returns a copy with playerID appended to team
func (t Teams) With(playerID uuid.UUID, team Team) Teams {
	out := t.clone()
	switch team {
	case TeamA:
		out.TeamA = append(out.TeamA, playerID)
	case TeamB:
		out.TeamB = append(out.TeamB, playerID)
	}
	return out
}

// Without returns a copy with playerID removed from team
func (t Teams) Without(playerID uuid.UUID, team Team) Teams {
	out := t.clone()
	drop := func(id uuid.UUID) bool { return id == playerID }
	switch team {
	case TeamA:
		out.TeamA = slices.DeleteFunc(out.TeamA, drop)
	case TeamB:
		out.TeamB = slices.DeleteFunc(out.TeamB, drop)
	}
	return out
}

func (t Teams) clone() Teams {
	return Teams{
		TeamA: append(make([]uuid.UUID, 0, len(t.TeamA)+1), t.TeamA...),
		TeamB: append(make([]uuid.UUID, 0, len(t.TeamB)+1), t.TeamB...),
	}
}

// Value implements driver.Valuer
func (t Teams) Value() (driver.Value, error) {
	if t.TeamA == nil {
		t.TeamA = []uuid.UUID{}
	}
	if t.TeamB == nil {
		t.TeamB = []uuid.UUID{}
	}
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (t *Teams) Scan(value interface{}) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*t = Teams{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for Teams: %T", value)
	}
	return json.Unmarshal(raw, t)
}

// Winner records which team won a match
type Winner struct {
	Team Team `json:"team"`
}

// Match represents a played match with its roster and optional winner
type Match struct {
	BaseModel
	Name  string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Date  time.Time `json:"date" gorm:"type:date;not null" validate:"required"`
	Teams Teams     `json:"teams" gorm:"type:jsonb;not null"`

	// WinnerTeam is NULL until a winner is recorded
	WinnerTeam *Team `json:"winner_team" gorm:"type:varchar(1);check:chk_matches_winner_team,winner_team IN ('A','B')"`
	Version    int   `json:"version" gorm:"not null;default:1"`
}

// Winner returns the recorded winner, or nil when none is set
func (m *Match) Winner() *Winner {
	if m.WinnerTeam == nil {
		return nil
	}
	return &Winner{Team: *m.WinnerTeam}
}

// TableName returns the table name for Match
func (Match) TableName() string {
	return "matches"
}
