package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"match-rating-backend/internal/config"
	"match-rating-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" for the readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "rater"
	pgPassword = "rater-secret"
	pgDatabase = "match_rating_test"
)

// ratingTables are emptied between tests, children first
var ratingTables = []string{"votes", "matches", "players"}

// pgHarness owns the one Postgres container shared by every integration
// suite in a test binary.
type pgHarness struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	cfg      *config.Config
}

var (
	harnessOnce sync.Once
	harnessErr  error
	harness     *pgHarness
)

// BaseTestSuite gives repository and router suites a migrated database plus a
// config pointing at it.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts Postgres on first use and hands back a suite bound to it.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	harnessOnce.Do(func() { harness, harnessErr = startPostgres() })
	if harnessErr != nil {
		t.Fatalf("failed to start postgres for integration tests: %v", harnessErr)
	}
	return &BaseTestSuite{DB: harness.db, Config: harness.cfg}
}

// CleanupSharedContainer closes the pool and removes the container. TestMain
// calls it once all suites in the package have run.
func CleanupSharedContainer() {
	if harness == nil {
		return
	}
	if sqlDB, err := harness.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	name := harness.resource.Container.Name
	if err := harness.pool.Purge(harness.resource); err != nil {
		log.Printf("WARN: could not remove postgres container %s: %v", name, err)
	} else {
		log.Printf("removed postgres container %s", name)
	}
	harness = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite empties the tables; the container outlives the suite.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB truncates players, matches and votes, skipping any table the
// schema does not have.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	migrator := s.DB.Migrator()
	for _, table := range ratingTables {
		if migrator.HasTable(table) {
			s.DB.Exec(fmt.Sprintf(`TRUNCATE TABLE %q CASCADE`, table))
		}
	}
}

func startPostgres() (*pgHarness, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	h := &pgHarness{pool: pool, resource: resource}
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	if err := pool.Retry(func() error {
		db, err := openMigrated(dsn)
		if err != nil {
			return err
		}
		h.db = db
		return nil
	}); err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	h.cfg = &config.Config{
		DatabaseURL:      dsn,
		Port:             "8080",
		LogLevel:         "debug",
		Environment:      "test",
		AdminAuthEnabled: true,
		JWTSecret:        "test-signing-key",
	}
	log.Printf("postgres ready for rating tests at %s", resource.GetHostPort("5432/tcp"))
	return h, nil
}

// openMigrated pings through database/sql, which fails fast while the server
// is still booting, and only then opens GORM so migrations run once.
func openMigrated(dsn string) (*gorm.DB, error) {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		return nil, err
	}

	db, err := database.Initialize(dsn, &database.Options{MaxOpenConns: 10, MaxIdleConns: 5})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return db, sqlDB.Ping()
}
