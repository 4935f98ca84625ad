package handler

import (
	"encoding/json"
	"net/http"

	"github.com/localstyle/brand-admin-go/internal/domain"
	"github.com/localstyle/brand-admin-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Brand — GET /v1/brand, PUT /v1/brand
// ============================================================

func getBrandHandler(svc *service.BrandService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/brand")
		defer span.End()

		brand, err := svc.Get(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, brand)
	}
}

func updateBrandHandler(svc *service.BrandService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/brand")
		defer span.End()

		var req domain.BrandUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		brand, err := svc.Update(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, brand)
	}
}
