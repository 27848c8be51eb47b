package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/lanternworks/auth-service/internal/domain"
	"github.com/lanternworks/auth-service/internal/ports"
)

// Janitor periodically removes expired sessions and recovery attempts.
// Expired rows are already invisible to readers, so this loop only reclaims
// storage; a missed sweep never changes observable behavior.
type Janitor struct {
	logger          *slog.Logger
	sessions        ports.SessionRepository
	recovery        ports.RecoveryRepository
	interval        time.Duration
	sessionValidity time.Duration
}

// NewJanitor constructs the cleanup loop with sane defaults.
func NewJanitor(
	logger *slog.Logger,
	sessions ports.SessionRepository,
	recovery ports.RecoveryRepository,
	interval time.Duration,
	sessionValidity time.Duration,
) *Janitor {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	if sessionValidity <= 0 {
		sessionValidity = domain.SessionValidity
	}
	return &Janitor{
		logger:          logger,
		sessions:        sessions,
		recovery:        recovery,
		interval:        interval,
		sessionValidity: sessionValidity,
	}
}

// Run executes the periodic sweep until context cancellation.
func (j *Janitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if err := j.sweepOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "janitor sweep failed",
				"module", "worker.janitor",
				"layer", "adapter",
				"operation", "janitor_sweep",
				"outcome", "failure",
				"error", err,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (j *Janitor) sweepOnce(ctx context.Context) error {
	now := time.Now().UTC()

	sessionsRemoved, err := j.sessions.DeleteStartedBefore(ctx, now.Add(-j.sessionValidity))
	if err != nil {
		return err
	}
	attemptsRemoved, err := j.recovery.DeleteExpiredBefore(ctx, now)
	if err != nil {
		return err
	}

	if sessionsRemoved > 0 || attemptsRemoved > 0 {
		j.logger.InfoContext(ctx, "janitor sweep completed",
			"module", "worker.janitor",
			"layer", "adapter",
			"operation", "janitor_sweep",
			"outcome", "success",
			"sessions_removed", sessionsRemoved,
			"recovery_attempts_removed", attemptsRemoved,
		)
	}
	return nil
}
