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
// Categories — /v1/categories
// ============================================================

func listCategoriesHandler(svc *service.CategoryService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/categories")
		defer span.End()

		filter := domain.CategoryFilter{
			IncludeChildren: r.URL.Query().Get("includeChildren") == "true",
		}
		// ?parentId=null (or empty) selects roots; a concrete id selects
		// that parent's children; absent means no parent filter at all.
		if r.URL.Query().Has("parentId") {
			filter.FilterByParent = true
			parentID := r.URL.Query().Get("parentId")
			if parentID == "" || parentID == "null" {
				filter.RootsOnly = true
			} else {
				filter.ParentID = parentID
			}
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

func getCategoryHandler(svc *service.CategoryService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/categories/{categoryId}")
		defer span.End()

		categoryID := chi.URLParam(r, "categoryId")
		span.SetAttributes(attribute.String("category.id", categoryID))

		category, err := svc.Get(ctx, categoryID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

func createCategoryHandler(svc *service.CategoryService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/categories")
		defer span.End()

		var req domain.CategoryCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		category, err := svc.Create(ctx, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, category)
	}
}

func updateCategoryHandler(svc *service.CategoryService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/categories/{categoryId}")
		defer span.End()

		categoryID := chi.URLParam(r, "categoryId")
		span.SetAttributes(attribute.String("category.id", categoryID))

		var req domain.CategoryUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		category, err := svc.Update(ctx, categoryID, &req)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, category)
	}
}

func deleteCategoryHandler(svc *service.CategoryService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/categories/{categoryId}")
		defer span.End()

		categoryID := chi.URLParam(r, "categoryId")
		if err := svc.Delete(ctx, categoryID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
