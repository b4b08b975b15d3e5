package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MinScore = 1
	MaxScore = 10
)

// Vote is a single score one player gave another for a match.
// At most one row exists per (match, voter, votee).
type Vote struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MatchID   uuid.UUID `json:"match_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_ballot_entry,priority:1;index"`
	VoterID   uuid.UUID `json:"voter_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_ballot_entry,priority:2;check:chk_votes_not_self,voter_id <> votee_id"`
	VoteeID   uuid.UUID `json:"votee_id" gorm:"type:uuid;not null;uniqueIndex:idx_votes_ballot_entry,priority:3;index"`
	Score     int       `json:"score" gorm:"not null;check:chk_votes_score,score >= 1 AND score <= 10"`
	CreatedAt time.Time `json:"created_at"`

	// Seq records insertion order; votes are read back in this order
	Seq int64 `json:"-" gorm:"autoIncrement;not null;uniqueIndex"`

	// Relationships
	Match *Match  `json:"-" gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE"`
	Voter *Player `json:"-" gorm:"foreignKey:VoterID;constraint:OnDelete:CASCADE"`
	Votee *Player `json:"-" gorm:"foreignKey:VoteeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

// BeforeCreate sets the UUID if not already set
func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
