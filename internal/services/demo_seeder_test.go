package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"bankist/internal/database"
	"bankist/internal/repositories"
)

// DemoSeederTestSuite defines the test suite for the demo account seeder
type DemoSeederTestSuite struct {
	suite.Suite
	db     *database.Database
	repo   repositories.AccountRepositoryInterface
	seeder *DemoSeeder
}

// SetupTest runs before each test
func (s *DemoSeederTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewAccountRepository(s.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.seeder = NewDemoSeeder(s.repo, NewPINService(bcrypt.MinCost), logger)
}

// TearDownTest runs after each test
func (s *DemoSeederTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestDemoSeederTestSuite runs the test suite
func TestDemoSeederTestSuite(t *testing.T) {
	suite.Run(t, new(DemoSeederTestSuite))
}

// TestGenerateAccounts_CreatesRequestedCount tests that the requested number
// of accounts is persisted with usable credentials
func (s *DemoSeederTestSuite) TestGenerateAccounts_CreatesRequestedCount() {
	generated, err := s.seeder.GenerateAccounts(3)

	s.Require().NoError(err)
	s.Len(generated, 3)

	accounts, err := s.repo.List()
	s.Require().NoError(err)
	s.Require().Len(accounts, 3)

	// List is position-ordered and positions follow generation order
	for i, cred := range generated {
		s.NotEmpty(cred.Owner)
		s.NotEmpty(cred.Username)
		s.Len(cred.PIN, 4)

		s.Equal(cred.Owner, accounts[i].Owner)
		s.Equal(cred.Username, accounts[i].Username)
		s.NoError(bcrypt.CompareHashAndPassword([]byte(accounts[i].PINHash), []byte(cred.PIN)))
	}
}

// TestGenerateAccounts_MovementShape tests the generated movement history
func (s *DemoSeederTestSuite) TestGenerateAccounts_MovementShape() {
	generated, err := s.seeder.GenerateAccounts(1)
	s.Require().NoError(err)
	s.Require().Len(generated, 1)

	accounts, err := s.repo.List()
	s.Require().NoError(err)
	s.Require().Len(accounts, 1)

	account, err := s.repo.GetByID(accounts[0].ID)
	s.Require().NoError(err)

	s.GreaterOrEqual(len(account.Movements), 4)
	s.LessOrEqual(len(account.Movements), 10)
	s.True(account.Movements[0].Amount.IsPositive(), "first movement should be a deposit")
}

// TestGenerateAccounts_PositionsContinue tests that generated accounts take
// directory positions after the existing ones
func (s *DemoSeederTestSuite) TestGenerateAccounts_PositionsContinue() {
	database.SeedTestAccounts(s.T(), s.db)

	generated, err := s.seeder.GenerateAccounts(2)
	s.Require().NoError(err)

	accounts, err := s.repo.List()
	s.Require().NoError(err)
	s.Require().Len(accounts, 4)

	s.Equal(generated[0].Owner, accounts[2].Owner)
	s.Equal(2, accounts[2].Position)
	s.Equal(generated[1].Owner, accounts[3].Owner)
	s.Equal(3, accounts[3].Position)
}

// TestGenerateAccounts_RejectsOutOfRangeCount tests the count bounds
func (s *DemoSeederTestSuite) TestGenerateAccounts_RejectsOutOfRangeCount() {
	for _, count := range []int{0, -1, 51} {
		generated, err := s.seeder.GenerateAccounts(count)
		s.Error(err)
		s.Nil(generated)
	}

	total, err := s.repo.Count()
	s.Require().NoError(err)
	s.Equal(int64(0), total)
}
