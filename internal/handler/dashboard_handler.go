package handler

import (
	"net/http"

	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Dashboard — GET /v1/dashboard/overview
// ============================================================

func dashboardOverviewHandler(svc *service.DashboardService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/dashboard/overview")
		defer span.End()

		overview, err := svc.Overview(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}
