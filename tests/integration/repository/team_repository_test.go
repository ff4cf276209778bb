package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"testing"

	"oncall-roster-service/internal/database"
	"oncall-roster-service/internal/domain"
	"oncall-roster-service/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type TeamRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	queries *database.Queries
	repo    domain.TeamRepository
	ctx     context.Context
}

func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.ctx = context.Background()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		"postgres", "password", "localhost", "5433", "oncall_roster_test",
	)

	var err error
	suite.db, err = sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	err = suite.db.Ping()
	if err != nil {
		log.Fatalf("Failed to ping test database: %v", err)
	}

	if err = database.MigrateDB(suite.db); err != nil {
		log.Fatalf("Failed to migrate test database: %v", err)
	}

	suite.queries = database.New(suite.db)
	suite.repo = repository.NewTeamRepository(suite.db, suite.queries)

	suite.cleanDatabase()
}

func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.cleanDatabase()
}

func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
}

func (suite *TeamRepositoryTestSuite) cleanDatabase() {
	tables := []string{"events", "plan_assignments", "plans", "unavailabilities", "members", "teams"}
	for _, table := range tables {
		_, err := suite.db.ExecContext(suite.ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			log.Printf("Failed to clean table %s: %v", table, err)
		}
	}
}

func (suite *TeamRepositoryTestSuite) TestCreateTeam() {
	team := &domain.Team{ID: "team-1", Name: "platform"}

	err := suite.repo.Create(suite.ctx, team)
	assert.NoError(suite.T(), err)

	exists, err := suite.repo.ExistsTeam(suite.ctx, "team-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)

	retrieved, err := suite.repo.GetByID(suite.ctx, "team-1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "platform", retrieved.Name)
	assert.Equal(suite.T(), 0, retrieved.MaxSavedCount)
	assert.False(suite.T(), retrieved.CreatedAt.IsZero())
}

func (suite *TeamRepositoryTestSuite) TestCreateTeam_DuplicateName() {
	err := suite.repo.Create(suite.ctx, &domain.Team{ID: "team-1", Name: "platform"})
	assert.NoError(suite.T(), err)

	err = suite.repo.Create(suite.ctx, &domain.Team{ID: "team-2", Name: "platform"})
	assert.ErrorIs(suite.T(), err, domain.ErrTeamAlreadyExists)
}

func (suite *TeamRepositoryTestSuite) TestExistsByName() {
	err := suite.repo.Create(suite.ctx, &domain.Team{ID: "team-1", Name: "platform"})
	assert.NoError(suite.T(), err)

	exists, err := suite.repo.ExistsByName(suite.ctx, "platform")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), exists)

	exists, err = suite.repo.ExistsByName(suite.ctx, "nonexistent")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), exists)
}

func (suite *TeamRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := suite.repo.GetByID(suite.ctx, "ghost")
	assert.ErrorIs(suite.T(), err, domain.ErrTeamNotFound)
}

func TestTeamRepositoryTestSuite(t *testing.T) {
	if os.Getenv("RUN_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set RUN_INTEGRATION_TESTS=1 to run.")
	}
	suite.Run(t, new(TeamRepositoryTestSuite))
}
