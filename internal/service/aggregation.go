package service

import (
	"strconv"

	"match-rating-backend/internal/database/models"

	"github.com/google/uuid"
)

const (
	// UnknownPlayerName stands in for ids that no longer resolve to a player
	UnknownPlayerName = "Unknown"
	// NotAvailable is shown for players who have not been rated
	NotAvailable = "N/A"
)

// ScoreBucket accumulates the scores a player received
type ScoreBucket struct {
	PlayerID uuid.UUID `json:"player_id"`
	Sum      int       `json:"sum"`
	Count    int       `json:"count"`
}

// Average returns Sum/Count, or false when the player has no votes
func (b ScoreBucket) Average() (float64, bool) {
	if b.Count == 0 {
		return 0, false
	}
	return float64(b.Sum) / float64(b.Count), true
}

// Averages holds per-votee buckets in the order they were first populated
type Averages struct {
	order   []uuid.UUID
	buckets map[uuid.UUID]*ScoreBucket
}

// ComputeAverages buckets votes by votee. Bucket order follows the order of votes.
func ComputeAverages(votes []models.Vote) *Averages {
	a := &Averages{buckets: make(map[uuid.UUID]*ScoreBucket)}
	for _, v := range votes {
		b, ok := a.buckets[v.VoteeID]
		if !ok {
			b = &ScoreBucket{PlayerID: v.VoteeID}
			a.buckets[v.VoteeID] = b
			a.order = append(a.order, v.VoteeID)
		}
		b.Sum += v.Score
		b.Count++
	}
	return a
}

// Len returns the number of rated players
func (a *Averages) Len() int {
	return len(a.order)
}

// Bucket returns the bucket for a player
func (a *Averages) Bucket(playerID uuid.UUID) (ScoreBucket, bool) {
	b, ok := a.buckets[playerID]
	if !ok {
		return ScoreBucket{PlayerID: playerID}, false
	}
	return *b, true
}

// Average returns the player's average score, or false when unrated
func (a *Averages) Average(playerID uuid.UUID) (float64, bool) {
	b, _ := a.Bucket(playerID)
	return b.Average()
}

// Buckets returns copies of all buckets in first-populated order
func (a *Averages) Buckets() []ScoreBucket {
	out := make([]ScoreBucket, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, *a.buckets[id])
	}
	return out
}

// ComputeVoterCounts counts the votes each player cast. It is informational and
// not checked against ballot completeness.
func ComputeVoterCounts(votes []models.Vote) map[uuid.UUID]int {
	counts := make(map[uuid.UUID]int)
	for _, v := range votes {
		counts[v.VoterID]++
	}
	return counts
}

// PlayerDirectory resolves player ids to display names
type PlayerDirectory map[uuid.UUID]string

// NewPlayerDirectory indexes players by id
func NewPlayerDirectory(players []models.Player) PlayerDirectory {
	d := make(PlayerDirectory, len(players))
	for _, p := range players {
		d[p.ID] = p.Name
	}
	return d
}

// Name returns the player's name or UnknownPlayerName for deleted players
func (d PlayerDirectory) Name(id uuid.UUID) string {
	if name, ok := d[id]; ok {
		return name
	}
	return UnknownPlayerName
}

// MVP is the player with the highest average score in a match
type MVP struct {
	PlayerID uuid.UUID `json:"player_id"`
	Name     string    `json:"name"`
	Average  float64   `json:"average"`
}

// ComputeMVP scans buckets in first-populated order and keeps the leader
// unless a strictly greater average shows up. Ties therefore go to the player
// whose first vote was read earlier. Returns nil when there are no votes.
func ComputeMVP(averages *Averages, players PlayerDirectory) *MVP {
	var mvp *MVP
	for _, b := range averages.Buckets() {
		avg, ok := b.Average()
		if !ok {
			continue
		}
		if mvp == nil || avg > mvp.Average {
			mvp = &MVP{PlayerID: b.PlayerID, Name: players.Name(b.PlayerID), Average: avg}
		}
	}
	return mvp
}

// FormatAverage renders an average with one decimal, or N/A
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return strconv.FormatFloat(avg, 'f', 1, 64)
}
