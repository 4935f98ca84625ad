// Package notify delivers staff-invite messages. The only implementation is
// a mock mailer that logs the message instead of talking to a provider, but
// it sits behind the same resilience stack a real mailer would.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/observability"
	"github.com/localstyle/brand-admin-go/internal/infra/resilience"
)

// EmailNotifier sends invite emails through a circuit breaker and bulkhead,
// retrying transient failures with backoff.
type EmailNotifier struct {
	sender   Sender
	breaker  *gobreaker.CircuitBreaker
	bulkhead *resilience.Bulkhead
	resCfg   resilience.Config
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// Sender is the raw delivery hook. The mock sender logs; a real SMTP or
// provider-API sender would slot in here.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewEmailNotifier wires the sender into the resilience stack.
func NewEmailNotifier(sender Sender, resCfg resilience.Config, metrics *observability.Metrics, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{
		sender:   sender,
		breaker:  resilience.NewCircuitBreaker("invite-email"),
		bulkhead: resilience.NewBulkhead(resCfg.MaxConcurrency),
		resCfg:   resCfg,
		metrics:  metrics,
		logger:   logger,
	}
}

// SendInvite delivers the invite email for inv.
func (n *EmailNotifier) SendInvite(ctx context.Context, inv *domain.StaffInvite) error {
	if err := n.bulkhead.Acquire(ctx); err != nil {
		n.metrics.IncrNotifierError("email")
		return &domain.ErrTimeout{Operation: "send invite email"}
	}
	defer n.bulkhead.Release()

	subject := "You're invited to join the team"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been invited to join as %s. The invite expires on %s.\n",
		inv.FirstName, inv.Role.DisplayName(), inv.ExpiresAt.Format(time.RFC1123),
	)

	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, resilience.RetryWithBackoff(ctx, n.resCfg, func() error {
			return n.sender.Send(ctx, inv.Email, subject, body)
		})
	})
	if err != nil {
		n.metrics.IncrNotifierError("email")
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &domain.ErrCircuitOpen{Service: "invite-email"}
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return &domain.ErrTimeout{Operation: "send invite email"}
		}
		return fmt.Errorf("send invite email: %w", err)
	}

	n.logger.Info("invite email sent",
		zap.String("invite_id", inv.ID),
		zap.String("email", inv.Email),
	)
	return nil
}

// LogSender is the mock delivery hook: it writes the message to the log and
// reports success.
type LogSender struct {
	logger *zap.Logger
}

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.logger.Info("mock email delivery",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_bytes", len(body)),
	)
	return nil
}
