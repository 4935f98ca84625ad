package handler

import (
	"encoding/json"
	"net/http"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/service"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ============================================================
// Staff invites — /v1/staff/invites
// ============================================================

func listInvitesHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/staff/invites")
		defer span.End()

		filter := domain.InviteFilter{
			Status: domain.InviteStatus(r.URL.Query().Get("status")),
			Email:  r.URL.Query().Get("email"),
		}
		page, limit := parsePagination(r)

		invites, total, err := svc.ListInvites(ctx, filter, page, limit)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"invites": invites,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}

func getInviteHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/staff/invites/{inviteId}")
		defer span.End()

		inviteID := chi.URLParam(r, "inviteId")
		span.SetAttributes(attribute.String("invite.id", inviteID))

		invite, err := svc.GetInvite(ctx, inviteID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, invite)
	}
}

func createInviteHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/staff/invites")
		defer span.End()

		var req domain.StaffInviteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		invite, err := svc.Invite(ctx, &req, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, invite)
	}
}

func respondInviteHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/staff/invites/{inviteId}")
		defer span.End()

		inviteID := chi.URLParam(r, "inviteId")
		span.SetAttributes(attribute.String("invite.id", inviteID))

		var req struct {
			Accept bool `json:"accept"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		invite, err := svc.RespondInvite(ctx, inviteID, req.Accept)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, invite)
	}
}

func cancelInviteHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/staff/invites/{inviteId}")
		defer span.End()

		inviteID := chi.URLParam(r, "inviteId")
		if err := svc.CancelInvite(ctx, inviteID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
