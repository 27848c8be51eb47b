package ports

import (
	"context"
	"time"
)

// RecoveryMailer delivers a recovery code out-of-band. The code is never
// echoed in any HTTP response; this channel is the only way it leaves the
// service.
type RecoveryMailer interface {
	SendRecoveryCode(ctx context.Context, to, code string, expiresAt time.Time) error
}
