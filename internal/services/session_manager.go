package services

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankist/internal/config"
	"bankist/internal/models"
)

var ErrNoActiveSession = errors.New("no active session")

// Session is one authenticated login. At most one session is live at a time;
// logging in replaces the previous session, mirroring a single shared
// terminal.
type Session struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	Username  string
	Sorted    bool

	remaining int
}

type sessionManager struct {
	mu       sync.Mutex
	session  *Session
	stopTick chan struct{}
	pending  []*time.Timer

	accountService AccountServiceInterface
	presenter      PresenterInterface
	metrics        MetricsRecorderInterface
	logger         *slog.Logger
	cfg            *config.SessionConfig
}

func NewSessionManager(
	accountService AccountServiceInterface,
	presenter PresenterInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
	cfg *config.SessionConfig,
) SessionManagerInterface {
	return &sessionManager{
		accountService: accountService,
		presenter:      presenter,
		metrics:        metrics,
		logger:         logger,
		cfg:            cfg,
	}
}

// Login authenticates and replaces any existing session. The inactivity
// countdown starts immediately at the configured value.
func (m *sessionManager) Login(username, pin string) (*Session, error) {
	account, err := m.accountService.Authenticate(username, pin)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			m.metrics.IncrementCounter("bankist_logins_total", map[string]string{"result": "rejected"})
		}
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session := &Session{
		ID:        uuid.New(),
		AccountID: account.ID,
		Username:  account.Username,
	}
	m.session = session

	m.presenter.RenderWelcome(account.FirstName())
	m.presenter.ShowAuthenticatedView(account)
	m.presenter.RenderAccount(account, false)

	m.restartCountdownLocked()
	m.metrics.IncrementCounter("bankist_logins_total", map[string]string{"result": "ok"})
	m.logger.Info("session started", "username", account.Username, "session_id", session.ID)

	return session, nil
}

func (m *sessionManager) Logout(sessionID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.ID != sessionID {
		return
	}
	m.endSessionLocked("logout")
}

func (m *sessionManager) Current(sessionID uuid.UUID) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.ID != sessionID {
		return nil, false
	}
	copy := *m.session
	return &copy, true
}

// Remaining reports the countdown without touching it, so a UI can poll the
// clock without keeping the session alive forever.
func (m *sessionManager) Remaining(sessionID uuid.UUID) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.ID != sessionID {
		return 0, false
	}
	return m.session.remaining, true
}

// Touch resets the inactivity countdown to its full value.
func (m *sessionManager) Touch(sessionID uuid.UUID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil || m.session.ID != sessionID {
		return false
	}
	m.restartCountdownLocked()
	return true
}

// View returns the session's account with movements, plus the sort flag.
func (m *sessionManager) View(sessionID uuid.UUID) (*models.Account, bool, error) {
	m.mu.Lock()
	if m.session == nil || m.session.ID != sessionID {
		m.mu.Unlock()
		return nil, false, ErrNoActiveSession
	}
	accountID := m.session.AccountID
	sorted := m.session.Sorted
	m.mu.Unlock()

	account, err := m.accountService.GetByID(accountID)
	if err != nil {
		return nil, false, err
	}
	return account, sorted, nil
}

func (m *sessionManager) ToggleSort(sessionID uuid.UUID) error {
	m.mu.Lock()
	if m.session == nil || m.session.ID != sessionID {
		m.mu.Unlock()
		return ErrNoActiveSession
	}
	m.session.Sorted = !m.session.Sorted
	accountID := m.session.AccountID
	sorted := m.session.Sorted
	m.mu.Unlock()

	if account, err := m.accountService.GetByID(accountID); err == nil {
		m.presenter.RenderAccount(account, sorted)
	}
	return nil
}

// Transfer validates the request and, when valid, schedules the settlement
// after the processing delay. Invalid requests are dropped without error; the
// caller cannot tell a rejected transfer from an accepted one.
func (m *sessionManager) Transfer(sessionID uuid.UUID, toUsername string, amount decimal.Decimal) error {
	session, ok := m.Current(sessionID)
	if !ok {
		return ErrNoActiveSession
	}

	recipient, err := m.accountService.ValidateTransfer(session.AccountID, toUsername, amount)
	if err != nil {
		m.logger.Info("transfer rejected",
			"from", session.Username,
			"to", toUsername,
			"amount", amount.String(),
			"reason", err,
		)
		m.metrics.IncrementCounter("bankist_transfers_total", map[string]string{"result": "rejected"})
		return nil
	}

	m.metrics.IncrementCounter("bankist_transfers_total", map[string]string{"result": "accepted"})
	m.schedule(func() {
		occurredAt := time.Now()
		if err := m.accountService.ExecuteTransfer(session.AccountID, recipient.ID, amount, occurredAt); err != nil {
			m.logger.Info("transfer dropped at settlement",
				"from", session.Username,
				"to", toUsername,
				"reason", err,
			)
			m.metrics.IncrementCounter("bankist_transfers_total", map[string]string{"result": "dropped"})
			return
		}
		m.refreshView(session.AccountID)
	})

	return nil
}

// RequestLoan grants a loan after the processing delay when the request is
// backed by a sufficient past movement. Like transfers, invalid requests are
// silently dropped.
func (m *sessionManager) RequestLoan(sessionID uuid.UUID, amount decimal.Decimal) error {
	session, ok := m.Current(sessionID)
	if !ok {
		return ErrNoActiveSession
	}

	if _, err := m.accountService.ValidateLoan(session.AccountID, amount); err != nil {
		m.logger.Info("loan rejected",
			"username", session.Username,
			"amount", amount.String(),
			"reason", err,
		)
		m.metrics.IncrementCounter("bankist_loans_total", map[string]string{"result": "rejected"})
		return nil
	}

	m.metrics.IncrementCounter("bankist_loans_total", map[string]string{"result": "accepted"})
	m.schedule(func() {
		if err := m.accountService.ExecuteLoan(session.AccountID, amount, time.Now()); err != nil {
			m.logger.Info("loan dropped at settlement",
				"username", session.Username,
				"reason", err,
			)
			m.metrics.IncrementCounter("bankist_loans_total", map[string]string{"result": "dropped"})
			return
		}
		m.refreshView(session.AccountID)
	})

	return nil
}

// CloseAccount permanently removes the session's account when the
// confirmation credentials match, then ends the session. A mismatch is
// dropped silently and the session continues.
func (m *sessionManager) CloseAccount(sessionID uuid.UUID, username, pin string) error {
	session, ok := m.Current(sessionID)
	if !ok {
		return ErrNoActiveSession
	}

	if err := m.accountService.Close(session.AccountID, username, pin); err != nil {
		m.logger.Info("close rejected", "username", session.Username, "reason", err)
		m.metrics.IncrementCounter("bankist_closes_total", map[string]string{"result": "rejected"})
		return nil
	}

	m.metrics.IncrementCounter("bankist_closes_total", map[string]string{"result": "ok"})

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session != nil && m.session.ID == sessionID {
		m.endSessionLocked("account closed")
	}
	return nil
}

// Shutdown stops the countdown and cancels pending settlements.
func (m *sessionManager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopCountdownLocked()
	for _, timer := range m.pending {
		timer.Stop()
	}
	m.pending = nil
	m.session = nil
}

func (m *sessionManager) schedule(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var timer *time.Timer
	timer = time.AfterFunc(m.cfg.ProcessingDelay, func() {
		fn()
		m.mu.Lock()
		for i, t := range m.pending {
			if t == timer {
				m.pending = append(m.pending[:i], m.pending[i+1:]...)
				break
			}
		}
		m.mu.Unlock()
	})
	m.pending = append(m.pending, timer)
}

// refreshView re-renders the account after a settlement, but only when the
// session is still on that account.
func (m *sessionManager) refreshView(accountID uuid.UUID) {
	m.mu.Lock()
	if m.session == nil || m.session.AccountID != accountID {
		m.mu.Unlock()
		return
	}
	sorted := m.session.Sorted
	m.mu.Unlock()

	if account, err := m.accountService.GetByID(accountID); err == nil {
		m.presenter.RenderAccount(account, sorted)
	}
}

// restartCountdownLocked replaces any running countdown with a fresh one.
// The new countdown renders its full value on the first tick.
func (m *sessionManager) restartCountdownLocked() {
	m.stopCountdownLocked()

	m.session.remaining = m.cfg.CountdownStart
	stop := make(chan struct{})
	m.stopTick = stop
	go m.runCountdown(stop)
}

func (m *sessionManager) stopCountdownLocked() {
	if m.stopTick != nil {
		close(m.stopTick)
		m.stopTick = nil
	}
}

func (m *sessionManager) runCountdown(stop chan struct{}) {
	if m.tick(stop) {
		return
	}

	ticker := time.NewTicker(m.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if m.tick(stop) {
				return
			}
		}
	}
}

// tick renders the remaining time, then either expires the session at zero or
// counts down one second. Returns true when this countdown is finished or has
// been superseded.
func (m *sessionManager) tick(stop chan struct{}) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.stopTick != stop || m.session == nil {
		return true
	}

	m.presenter.RenderCountdown(m.session.remaining)
	m.metrics.RecordGauge("bankist_session_countdown_seconds", float64(m.session.remaining), nil)

	if m.session.remaining == 0 {
		m.metrics.IncrementCounter("bankist_session_timeouts_total", nil)
		m.endSessionLocked("timeout")
		return true
	}

	m.session.remaining--
	return false
}

// endSessionLocked clears the session and returns the UI to the logged-out
// state. Callers hold the mutex.
func (m *sessionManager) endSessionLocked(reason string) {
	m.logger.Info("session ended", "username", m.session.Username, "reason", reason)
	m.stopCountdownLocked()
	m.session = nil
	m.presenter.HideAuthenticatedView()
	m.presenter.RenderLoggedOut()
}
