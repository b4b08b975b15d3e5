package service_test

import (
	"testing"

	"match-rating-backend/internal/database/models"
	"match-rating-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vote(voter, votee uuid.UUID, score int) models.Vote {
	return models.Vote{ID: uuid.New(), VoterID: voter, VoteeID: votee, Score: score}
}

func TestComputeAverages(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	voter := uuid.New()

	averages := service.ComputeAverages([]models.Vote{
		vote(voter, p1, 8),
		vote(voter, p1, 6),
		vote(voter, p2, 10),
	})

	require.Equal(t, 2, averages.Len())

	b1, ok := averages.Bucket(p1)
	require.True(t, ok)
	assert.Equal(t, 14, b1.Sum)
	assert.Equal(t, 2, b1.Count)
	avg, ok := averages.Average(p1)
	assert.True(t, ok)
	assert.InDelta(t, 7.0, avg, 1e-9)

	b2, ok := averages.Bucket(p2)
	require.True(t, ok)
	assert.Equal(t, 1, b2.Count)
	avg, ok = averages.Average(p2)
	assert.True(t, ok)
	assert.InDelta(t, 10.0, avg, 1e-9)

	t.Run("unrated player has no average", func(t *testing.T) {
		b, ok := averages.Bucket(uuid.New())
		assert.False(t, ok)
		assert.Zero(t, b.Count)
		_, ok = averages.Average(uuid.New())
		assert.False(t, ok)
	})

	t.Run("buckets keep first-populated order", func(t *testing.T) {
		buckets := averages.Buckets()
		require.Len(t, buckets, 2)
		assert.Equal(t, p1, buckets[0].PlayerID)
		assert.Equal(t, p2, buckets[1].PlayerID)
	})
}

func TestComputeMVP(t *testing.T) {
	p1, p2, p3 := uuid.New(), uuid.New(), uuid.New()
	voter := uuid.New()
	dir := service.PlayerDirectory{p1: "Ana", p2: "Ben", p3: "Cai"}

	t.Run("highest average wins", func(t *testing.T) {
		averages := service.ComputeAverages([]models.Vote{
			vote(voter, p1, 8),
			vote(voter, p1, 6),
			vote(voter, p2, 10),
		})

		mvp := service.ComputeMVP(averages, dir)

		require.NotNil(t, mvp)
		assert.Equal(t, p2, mvp.PlayerID)
		assert.Equal(t, "Ben", mvp.Name)
		assert.InDelta(t, 10.0, mvp.Average, 1e-9)
	})

	t.Run("tie goes to the player read first", func(t *testing.T) {
		averages := service.ComputeAverages([]models.Vote{
			vote(voter, p3, 7),
			vote(voter, p1, 9),
			vote(voter, p2, 9),
			vote(voter, p3, 7),
		})

		mvp := service.ComputeMVP(averages, dir)

		require.NotNil(t, mvp)
		assert.Equal(t, p1, mvp.PlayerID)
	})

	t.Run("reversed read order flips the tie", func(t *testing.T) {
		averages := service.ComputeAverages([]models.Vote{
			vote(voter, p2, 9),
			vote(voter, p1, 9),
		})

		mvp := service.ComputeMVP(averages, dir)

		require.NotNil(t, mvp)
		assert.Equal(t, p2, mvp.PlayerID)
	})

	t.Run("no votes means no MVP", func(t *testing.T) {
		assert.Nil(t, service.ComputeMVP(service.ComputeAverages(nil), dir))
	})

	t.Run("deleted player resolves to Unknown", func(t *testing.T) {
		ghost := uuid.New()
		averages := service.ComputeAverages([]models.Vote{vote(voter, ghost, 5)})

		mvp := service.ComputeMVP(averages, dir)

		require.NotNil(t, mvp)
		assert.Equal(t, service.UnknownPlayerName, mvp.Name)
	})
}

func TestComputeVoterCounts(t *testing.T) {
	v1, v2 := uuid.New(), uuid.New()
	p := uuid.New()

	counts := service.ComputeVoterCounts([]models.Vote{
		vote(v1, p, 5),
		vote(v1, v2, 6),
		vote(v2, p, 7),
	})

	assert.Equal(t, 2, counts[v1])
	assert.Equal(t, 1, counts[v2])
	assert.Len(t, counts, 2)
}

func TestFormatAverage(t *testing.T) {
	assert.Equal(t, "7.0", service.FormatAverage(7, true))
	assert.Equal(t, "6.7", service.FormatAverage(20.0/3.0, true))
	assert.Equal(t, "N/A", service.FormatAverage(0, false))
}

func TestPlayerDirectory(t *testing.T) {
	id := uuid.New()
	dir := service.NewPlayerDirectory([]models.Player{
		{BaseModel: models.BaseModel{ID: id}, Name: "Ana"},
	})

	assert.Equal(t, "Ana", dir.Name(id))
	assert.Equal(t, service.UnknownPlayerName, dir.Name(uuid.New()))
}
