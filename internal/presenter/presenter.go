package presenter

import (
	"log/slog"
	"time"

	"bankist/internal/models"
	"bankist/internal/services"
)

// LogPresenter renders UI state transitions to the structured log. It stands
// in for a real front end: every push the session manager makes shows up as a
// log line, and the HTTP layer reads the same state back through the manager.
type LogPresenter struct {
	logger *slog.Logger
}

func NewLogPresenter(logger *slog.Logger) services.PresenterInterface {
	return &LogPresenter{logger: logger}
}

func (p *LogPresenter) ShowAuthenticatedView(account *models.Account) {
	p.logger.Info("ui: authenticated view shown", "username", account.Username)
}

func (p *LogPresenter) HideAuthenticatedView() {
	p.logger.Info("ui: authenticated view hidden")
}

func (p *LogPresenter) RenderWelcome(firstName string) {
	p.logger.Info("ui: welcome", "message", WelcomeMessage(firstName))
}

func (p *LogPresenter) RenderLoggedOut() {
	p.logger.Info("ui: logged out", "message", "Log in to get started")
}

func (p *LogPresenter) RenderAccount(account *models.Account, sorted bool) {
	view := BuildAccountView(account, sorted, time.Now())
	p.logger.Info("ui: account rendered",
		"username", account.Username,
		"balance", view.Summary.Balance,
		"movements", len(view.Movements),
		"sorted", sorted,
	)
}

func (p *LogPresenter) RenderCountdown(remaining int) {
	p.logger.Debug("ui: countdown", "display", FormatCountdown(remaining))
}
