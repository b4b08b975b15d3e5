package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"match-rating-backend/internal/config"
	"match-rating-backend/internal/database"
	"match-rating-backend/internal/database/models"
	apperrors "match-rating-backend/internal/errors"
	"match-rating-backend/internal/repository"
	"match-rating-backend/internal/service"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that reference players by name
type PlayerData struct {
	Name string `yaml:"name"`
}

type MatchData struct {
	Name    string       `yaml:"name"`
	Date    string       `yaml:"date"`
	TeamA   []string     `yaml:"team_a"`
	TeamB   []string     `yaml:"team_b"`
	Winner  string       `yaml:"winner,omitempty"`
	Ballots []BallotData `yaml:"ballots,omitempty"`
}

type BallotData struct {
	Voter   string         `yaml:"voter"`
	Ratings map[string]int `yaml:"ratings"`
}

// File structures
type PlayersFile struct {
	Players []PlayerData `yaml:"players"`
}

type MatchesFile struct {
	Matches []MatchData `yaml:"matches"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(context.Background(), db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, db *gorm.DB, dataDir string) error {
	var playersFile PlayersFile
	if err := loadYAML(dataDir, "players", &playersFile); err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	var matchesFile MatchesFile
	if err := loadYAML(dataDir, "matches", &matchesFile); err != nil {
		return fmt.Errorf("failed to load matches: %w", err)
	}

	// Create players first
	playerMap := make(map[string]*models.Player)
	playerCreated := 0
	for _, playerData := range playersFile.Players {
		player, created, err := createPlayer(db, playerData)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", playerData.Name, err)
		}
		playerMap[playerData.Name] = player
		if created {
			playerCreated++
		}
	}
	log.Printf("📋 Players: %d created, %d total", playerCreated, len(playersFile.Players))

	// Ballots go through the voting service so seeded votes obey the same rules as the API
	matchRepo := repository.NewMatchRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	votingService := service.NewVotingService(matchRepo, playerRepo, voteRepo, service.NewResultsService(matchRepo, playerRepo, voteRepo))

	matchCreated, ballotsRecorded := 0, 0
	for _, matchData := range matchesFile.Matches {
		match, created, err := createMatch(db, matchData, playerMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create match %s: %v", matchData.Name, err)
			continue // Continue with other matches
		}
		if created {
			matchCreated++
		}

		for _, ballot := range matchData.Ballots {
			recorded, err := submitBallot(ctx, votingService, match.ID, ballot, playerMap)
			if err != nil {
				log.Printf("⚠️  Warning: ballot by %s for %s rejected: %v", ballot.Voter, matchData.Name, err)
				continue
			}
			if recorded {
				ballotsRecorded++
			}
		}
	}
	log.Printf("📋 Matches: %d created, %d total", matchCreated, len(matchesFile.Matches))
	log.Printf("📋 Ballots: %d recorded", ballotsRecorded)

	return nil
}

// loadYAML decodes every .yaml file under dataDir whose path contains kind into out.
// Later files append to the lists decoded from earlier ones.
func loadYAML(dataDir, kind string, out interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, kind) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			switch target := out.(type) {
			case *PlayersFile:
				var file PlayersFile
				if err := yaml.Unmarshal(data, &file); err != nil {
					return err
				}
				target.Players = append(target.Players, file.Players...)
			case *MatchesFile:
				var file MatchesFile
				if err := yaml.Unmarshal(data, &file); err != nil {
					return err
				}
				target.Matches = append(target.Matches, file.Matches...)
			}
		}
		return nil
	})
}

func createPlayer(db *gorm.DB, playerData PlayerData) (*models.Player, bool, error) {
	var existing models.Player
	err := db.Where("name = ?", playerData.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	player := &models.Player{Name: playerData.Name}
	if err := db.Create(player).Error; err != nil {
		return nil, false, err
	}
	return player, true, nil
}

func createMatch(db *gorm.DB, matchData MatchData, playerMap map[string]*models.Player) (*models.Match, bool, error) {
	date, err := time.Parse("2006-01-02", matchData.Date)
	if err != nil {
		return nil, false, fmt.Errorf("invalid date %q: %w", matchData.Date, err)
	}

	var existing models.Match
	err = db.Where("name = ? AND date = ?", matchData.Name, date).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	teams := models.Teams{}
	for _, side := range []struct {
		team  models.Team
		names []string
	}{{models.TeamA, matchData.TeamA}, {models.TeamB, matchData.TeamB}} {
		for _, name := range side.names {
			player, ok := playerMap[name]
			if !ok {
				return nil, false, fmt.Errorf("unknown player %q", name)
			}
			if teams.Contains(player.ID) {
				return nil, false, fmt.Errorf("player %q is on both teams", name)
			}
			teams = teams.With(player.ID, side.team)
		}
	}

	match := &models.Match{
		Name:  matchData.Name,
		Date:  date,
		Teams: teams,
	}
	if matchData.Winner != "" {
		winner, ok := models.ParseTeam(matchData.Winner)
		if !ok {
			return nil, false, fmt.Errorf("invalid winner %q", matchData.Winner)
		}
		match.WinnerTeam = &winner
	}

	if err := db.Create(match).Error; err != nil {
		return nil, false, err
	}
	return match, true, nil
}

func submitBallot(ctx context.Context, votingService *service.VotingService, matchID uuid.UUID, ballot BallotData, playerMap map[string]*models.Player) (bool, error) {
	voter, ok := playerMap[ballot.Voter]
	if !ok {
		return false, fmt.Errorf("unknown voter %q", ballot.Voter)
	}

	ratings := make(map[uuid.UUID]*int, len(ballot.Ratings))
	for name, score := range ballot.Ratings {
		player, ok := playerMap[name]
		if !ok {
			return false, fmt.Errorf("unknown player %q", name)
		}
		score := score
		ratings[player.ID] = &score
	}

	_, err := votingService.SubmitBallot(ctx, matchID, &service.SubmitBallotRequest{
		VoterID: &voter.ID,
		Ratings: ratings,
	})
	if errors.Is(err, apperrors.ErrBallotAlreadySubmitted) {
		return false, nil
	}
	return err == nil, err
}
