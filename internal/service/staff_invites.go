package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/infra/memstore"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// InviteTTL is how long a staff invite stays acceptable.
const InviteTTL = 7 * 24 * time.Hour

// ============================================================
// Invite — POST /v1/staff/invites
// ============================================================

// Invite creates a pending invite and sends the notification email. Only one
// pending invite may exist per email address; a pending invite that has
// already expired is marked expired and replaced.
func (s *StaffService) Invite(ctx context.Context, req *domain.StaffInviteRequest, invitedBy string) (*domain.StaffInvite, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.Invite")
	defer span.End()

	if err := validateInviteRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.invites.FindPendingByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check pending invite: %w", err)
	}
	now := time.Now()
	if existing != nil {
		if !existing.IsExpired(now) {
			return nil, &domain.ErrConflict{Message: "a pending invite already exists for this email"}
		}
		existing.Status = domain.InviteExpired
		if err := s.invites.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("expire stale invite: %w", err)
		}
	}

	inv := &domain.StaffInvite{
		ID:         memstore.NewID("invite"),
		Email:      req.Email,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Role:       req.Role,
		BranchID:   req.BranchID,
		Position:   req.Position,
		Department: req.Department,
		InvitedBy:  invitedBy,
		Message:    req.Message,
		Status:     domain.InvitePending,
		SentAt:     now,
		ExpiresAt:  now.Add(InviteTTL),
		CreatedAt:  now,
	}
	if inv.BranchID != "" {
		if name, err := s.branches.BranchName(ctx, inv.BranchID); err == nil {
			inv.BranchName = name
		}
	}

	if err := s.invites.Insert(ctx, inv); err != nil {
		return nil, fmt.Errorf("insert invite: %w", err)
	}

	s.metrics.IncrMutation("invites")
	span.SetAttributes(attribute.String("invite.id", inv.ID))

	if err := s.notifier.SendInvite(ctx, inv); err != nil {
		// The invite stands; delivery can be retried by re-sending.
		s.logger.Warn("invite created but email delivery failed",
			zap.String("invite_id", inv.ID),
			zap.Error(err),
		)
	}
	return inv, nil
}

func validateInviteRequest(req *domain.StaffInviteRequest) error {
	if strings.TrimSpace(req.Email) == "" {
		return &domain.ErrValidation{Field: "email", Message: "email is required"}
	}
	if !strings.Contains(req.Email, "@") {
		return &domain.ErrValidation{Field: "email", Message: "email is malformed"}
	}
	if !req.Role.Valid() {
		return &domain.ErrValidation{Field: "role", Message: "unknown role"}
	}
	return nil
}

// ============================================================
// ListInvites — GET /v1/staff/invites
// ============================================================

func (s *StaffService) ListInvites(ctx context.Context, filter domain.InviteFilter, page, limit int) ([]domain.StaffInvite, int, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.ListInvites")
	defer span.End()

	all, err := s.invites.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list invites: %w", err)
	}

	filtered := make([]domain.StaffInvite, 0, len(all))
	for _, inv := range all {
		if filter.Status != "" && inv.Status != filter.Status {
			continue
		}
		if filter.Email != "" && !strings.Contains(strings.ToLower(inv.Email), strings.ToLower(filter.Email)) {
			continue
		}
		filtered = append(filtered, inv)
	}
	return paginate(filtered, page, limit), len(filtered), nil
}

func (s *StaffService) GetInvite(ctx context.Context, id string) (*domain.StaffInvite, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.GetInvite")
	defer span.End()
	span.SetAttributes(attribute.String("invite.id", id))

	return s.invites.FindByID(ctx, id)
}

// ============================================================
// RespondInvite — POST /v1/staff/invites/{id}/respond
// ============================================================

// RespondInvite accepts or declines a pending invite. Responding to an
// expired invite marks it expired and fails.
func (s *StaffService) RespondInvite(ctx context.Context, id string, accept bool) (*domain.StaffInvite, error) {
	ctx, span := staffTracer.Start(ctx, "StaffService.RespondInvite")
	defer span.End()
	span.SetAttributes(attribute.String("invite.id", id))

	inv, err := s.invites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvitePending {
		return nil, &domain.ErrConflict{Message: "invite is no longer pending"}
	}

	now := time.Now()
	if inv.IsExpired(now) {
		inv.Status = domain.InviteExpired
		if err := s.invites.Update(ctx, inv); err != nil {
			return nil, fmt.Errorf("expire invite: %w", err)
		}
		return nil, &domain.ErrExpired{Resource: "invite", ID: id}
	}

	if accept {
		inv.Status = domain.InviteAccepted
		inv.AcceptedAt = &now
	} else {
		inv.Status = domain.InviteCancelled
	}
	if err := s.invites.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("update invite: %w", err)
	}

	s.metrics.IncrMutation("invites")
	s.logger.Info("invite responded",
		zap.String("invite_id", id),
		zap.Bool("accepted", accept),
	)
	return inv, nil
}

// ============================================================
// CancelInvite — DELETE /v1/staff/invites/{id}
// ============================================================

// CancelInvite withdraws an invite regardless of its status.
func (s *StaffService) CancelInvite(ctx context.Context, id string) error {
	ctx, span := staffTracer.Start(ctx, "StaffService.CancelInvite")
	defer span.End()
	span.SetAttributes(attribute.String("invite.id", id))

	if err := s.invites.Delete(ctx, id); err != nil {
		return err
	}

	s.metrics.IncrMutation("invites")
	s.logger.Info("invite cancelled", zap.String("invite_id", id))
	return nil
}
