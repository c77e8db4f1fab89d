package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"bankist/internal/config"
	"bankist/internal/database"
	"bankist/internal/repositories"
	"bankist/internal/services/service_mocks"
)

type SessionManagerTestSuite struct {
	suite.Suite
	db             *database.Database
	repo           repositories.AccountRepositoryInterface
	accountService AccountServiceInterface
	manager        SessionManagerInterface
	ctrl           *gomock.Controller
	presenter      *service_mocks.MockPresenterInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
}

func (suite *SessionManagerTestSuite) SetupTest() {
	suite.db = database.SetupTestDB(suite.T())
	suite.repo = repositories.NewAccountRepository(suite.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.accountService = NewAccountService(suite.repo, NewPINService(bcrypt.MinCost), logger)

	database.SeedTestAccounts(suite.T(), suite.db)

	suite.ctrl = gomock.NewController(suite.T())
	suite.presenter = service_mocks.NewMockPresenterInterface(suite.ctrl)
	suite.metrics = service_mocks.NewMockMetricsRecorderInterface(suite.ctrl)
	suite.allowAllRendering()
}

func (suite *SessionManagerTestSuite) TearDownTest() {
	if suite.manager != nil {
		suite.manager.Shutdown()
	}
	suite.ctrl.Finish()
	database.CleanupTestDB(suite.T(), suite.db)
	suite.db.Close()
}

// allowAllRendering sets permissive expectations; individual tests assert on
// state through the manager, not on render calls.
func (suite *SessionManagerTestSuite) allowAllRendering() {
	suite.presenter.EXPECT().ShowAuthenticatedView(gomock.Any()).AnyTimes()
	suite.presenter.EXPECT().HideAuthenticatedView().AnyTimes()
	suite.presenter.EXPECT().RenderWelcome(gomock.Any()).AnyTimes()
	suite.presenter.EXPECT().RenderLoggedOut().AnyTimes()
	suite.presenter.EXPECT().RenderAccount(gomock.Any(), gomock.Any()).AnyTimes()
	suite.presenter.EXPECT().RenderCountdown(gomock.Any()).AnyTimes()
	suite.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	suite.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()
	suite.metrics.EXPECT().RecordGauge(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

// newManager builds a manager with a long tick so the countdown never expires
// mid-test unless the test wants it to.
func (suite *SessionManagerTestSuite) newManager(cfg config.SessionConfig) SessionManagerInterface {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.manager = NewSessionManager(suite.accountService, suite.presenter, suite.metrics, logger, &cfg)
	return suite.manager
}

func (suite *SessionManagerTestSuite) defaultManager() SessionManagerInterface {
	return suite.newManager(config.SessionConfig{
		CountdownStart:  30,
		TickInterval:    time.Hour,
		ProcessingDelay: 100 * time.Millisecond,
	})
}

func (suite *SessionManagerTestSuite) TestLoginStartsSession() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)
	suite.Equal("js", session.Username)

	current, ok := manager.Current(session.ID)
	suite.True(ok)
	suite.Equal(session.ID, current.ID)
	suite.False(current.Sorted)
}

func (suite *SessionManagerTestSuite) TestLoginRejectsWrongPIN() {
	manager := suite.defaultManager()

	_, err := manager.Login("js", "9999")
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *SessionManagerTestSuite) TestLoginReplacesSession() {
	manager := suite.defaultManager()

	first, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	second, err := manager.Login("jd", "2222")
	suite.Require().NoError(err)

	_, ok := manager.Current(first.ID)
	suite.False(ok, "previous session must be replaced")

	_, ok = manager.Current(second.ID)
	suite.True(ok)
}

func (suite *SessionManagerTestSuite) TestCountdownFirstTickShowsFullValue() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	// the immediate first tick renders 30 and counts down to 29; with an
	// hour-long tick interval it then stays put
	suite.Eventually(func() bool {
		remaining, ok := manager.Remaining(session.ID)
		return ok && remaining == 29
	}, time.Second, 5*time.Millisecond)
}

func (suite *SessionManagerTestSuite) TestCountdownExpiresSession() {
	manager := suite.newManager(config.SessionConfig{
		CountdownStart:  1,
		TickInterval:    10 * time.Millisecond,
		ProcessingDelay: 20 * time.Millisecond,
	})

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		_, ok := manager.Current(session.ID)
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func (suite *SessionManagerTestSuite) TestTouchResetsCountdown() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		remaining, ok := manager.Remaining(session.ID)
		return ok && remaining == 29
	}, time.Second, 5*time.Millisecond)

	suite.True(manager.Touch(session.ID))

	// the fresh countdown starts over from the top
	suite.Eventually(func() bool {
		remaining, ok := manager.Remaining(session.ID)
		return ok && remaining == 29
	}, time.Second, 5*time.Millisecond)
}

func (suite *SessionManagerTestSuite) TestLogoutEndsSession() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	manager.Logout(session.ID)

	_, ok := manager.Current(session.ID)
	suite.False(ok)

	suite.ErrorIs(manager.ToggleSort(session.ID), ErrNoActiveSession)
}

func (suite *SessionManagerTestSuite) TestToggleSortFlipsState() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Require().NoError(manager.ToggleSort(session.ID))
	_, sorted, err := manager.View(session.ID)
	suite.Require().NoError(err)
	suite.True(sorted)

	suite.Require().NoError(manager.ToggleSort(session.ID))
	_, sorted, err = manager.View(session.ID)
	suite.Require().NoError(err)
	suite.False(sorted)
}

func (suite *SessionManagerTestSuite) TestTransferSettlesAfterDelay() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Require().NoError(manager.Transfer(session.ID, "jd", decimal.RequireFromString("100")))

	// nothing settles before the processing delay has elapsed
	jessica, err := suite.repo.GetByUsername("jd")
	suite.Require().NoError(err)
	suite.Len(jessica.Movements, 8)

	suite.Eventually(func() bool {
		jessica, err := suite.repo.GetByUsername("jd")
		return err == nil && len(jessica.Movements) == 9
	}, time.Second, 5*time.Millisecond)

	jonas, err := suite.repo.GetByUsername("js")
	suite.Require().NoError(err)
	suite.Equal("-100", jonas.Movements[len(jonas.Movements)-1].Amount.String())
}

func (suite *SessionManagerTestSuite) TestInvalidTransferIsSilentlyDropped() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	// all four rejection reasons answer nil
	suite.NoError(manager.Transfer(session.ID, "jd", decimal.Zero))
	suite.NoError(manager.Transfer(session.ID, "zz", decimal.RequireFromString("10")))
	suite.NoError(manager.Transfer(session.ID, "js", decimal.RequireFromString("10")))
	suite.NoError(manager.Transfer(session.ID, "jd", decimal.RequireFromString("9999999")))

	time.Sleep(50 * time.Millisecond)

	jonas, err := suite.repo.GetByUsername("js")
	suite.Require().NoError(err)
	suite.Len(jonas.Movements, 8, "no movement may be recorded for a rejected transfer")
}

func (suite *SessionManagerTestSuite) TestTransferDroppedWhenSenderCloses() {
	manager := suite.newManager(config.SessionConfig{
		CountdownStart:  30,
		TickInterval:    time.Hour,
		ProcessingDelay: 50 * time.Millisecond,
	})

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Require().NoError(manager.Transfer(session.ID, "jd", decimal.RequireFromString("100")))
	suite.Require().NoError(manager.CloseAccount(session.ID, "js", "1111"))

	time.Sleep(100 * time.Millisecond)

	jessica, err := suite.repo.GetByUsername("jd")
	suite.Require().NoError(err)
	suite.Len(jessica.Movements, 8, "a settlement against a closed account must be dropped")
}

func (suite *SessionManagerTestSuite) TestLoanSettlesAfterDelay() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Require().NoError(manager.RequestLoan(session.ID, decimal.RequireFromString("2000.50")))

	suite.Eventually(func() bool {
		jonas, err := suite.repo.GetByUsername("js")
		return err == nil && len(jonas.Movements) == 9
	}, time.Second, 5*time.Millisecond)

	jonas, err := suite.repo.GetByUsername("js")
	suite.Require().NoError(err)
	suite.Equal("2000", jonas.Movements[8].Amount.String(), "the granted amount is rounded down to a whole unit")
}

func (suite *SessionManagerTestSuite) TestInvalidLoanIsSilentlyDropped() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.NoError(manager.RequestLoan(session.ID, decimal.Zero))
	suite.NoError(manager.RequestLoan(session.ID, decimal.RequireFromString("9999999")))

	time.Sleep(50 * time.Millisecond)

	jonas, err := suite.repo.GetByUsername("js")
	suite.Require().NoError(err)
	suite.Len(jonas.Movements, 8)
}

func (suite *SessionManagerTestSuite) TestCloseAccountEndsSession() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	suite.Require().NoError(manager.CloseAccount(session.ID, "js", "1111"))

	_, ok := manager.Current(session.ID)
	suite.False(ok)

	_, err = suite.repo.GetByUsername("js")
	suite.ErrorIs(err, repositories.ErrAccountNotFound)
}

func (suite *SessionManagerTestSuite) TestCloseAccountRejectsMismatch() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)

	// wrong username and wrong PIN both drop silently, session survives
	suite.NoError(manager.CloseAccount(session.ID, "jd", "1111"))
	suite.NoError(manager.CloseAccount(session.ID, "js", "9999"))

	_, ok := manager.Current(session.ID)
	suite.True(ok)

	_, err = suite.repo.GetByUsername("js")
	suite.NoError(err)
}

func (suite *SessionManagerTestSuite) TestOperationsRequireLiveSession() {
	manager := suite.defaultManager()

	session, err := manager.Login("js", "1111")
	suite.Require().NoError(err)
	manager.Logout(session.ID)

	suite.ErrorIs(manager.Transfer(session.ID, "jd", decimal.RequireFromString("10")), ErrNoActiveSession)
	suite.ErrorIs(manager.RequestLoan(session.ID, decimal.RequireFromString("10")), ErrNoActiveSession)
	suite.ErrorIs(manager.CloseAccount(session.ID, "js", "1111"), ErrNoActiveSession)

	_, _, err = manager.View(session.ID)
	suite.ErrorIs(err, ErrNoActiveSession)

	_, ok := manager.Remaining(session.ID)
	suite.False(ok)
	suite.False(manager.Touch(session.ID))
}

func TestSessionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerTestSuite))
}
