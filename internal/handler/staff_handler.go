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
// Staff — /v1/staff
// ============================================================

func listStaffHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/staff")
		defer span.End()

		q := r.URL.Query()
		filter := domain.StaffFilter{
			Role:       domain.Role(q.Get("role")),
			Status:     domain.StaffStatus(q.Get("status")),
			BranchID:   q.Get("branchId"),
			Department: q.Get("department"),
			Search:     q.Get("search"),
		}
		page, limit := parsePagination(r)

		resp, err := svc.List(ctx, filter, page, limit)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func staffStatsHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/staff/stats")
		defer span.End()

		stats, err := svc.Stats(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func getStaffHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/staff/{staffId}")
		defer span.End()

		staffID := chi.URLParam(r, "staffId")
		span.SetAttributes(attribute.String("staff.id", staffID))

		profile, err := svc.Get(ctx, staffID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func createStaffHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/staff")
		defer span.End()

		var req domain.StaffCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := svc.Create(ctx, &req, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, profile)
	}
}

func updateStaffHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/staff/{staffId}")
		defer span.End()

		staffID := chi.URLParam(r, "staffId")
		span.SetAttributes(attribute.String("staff.id", staffID))

		var req domain.StaffUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		profile, err := svc.Update(ctx, staffID, &req, UserIDFromContext(ctx))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

func deleteStaffHandler(svc *service.StaffService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/staff/{staffId}")
		defer span.End()

		staffID := chi.URLParam(r, "staffId")
		if err := svc.Delete(ctx, staffID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
