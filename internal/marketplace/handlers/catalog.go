package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type categoryRequest struct {
	Label string `json:"label" binding:"required"`
}

type serviceRequest struct {
	Label      string `json:"label" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

// ListCategories returns the catalog with services preloaded. Public.
func (h *Handler) ListCategories(ctx *gin.Context) {
	categories, err := h.catalog.ListCategories(ctx.Request.Context())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: categories, Total: int64(len(categories))})
}

func (h *Handler) CreateCategory(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body categoryRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	category, err := h.catalog.CreateCategory(ctx.Request.Context(), user, body.Label)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, category)
}

func (h *Handler) UpdateCategory(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	categoryID, ok := uuidParam(ctx, "category_id")
	if !ok {
		return
	}
	var body categoryRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	category, err := h.catalog.UpdateCategory(ctx.Request.Context(), user, categoryID, body.Label)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, category)
}

func (h *Handler) CreateCatalogService(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body serviceRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	categoryID, err := uuidFromString(ctx, body.CategoryID, "category_id")
	if err != nil {
		return
	}
	service, err := h.catalog.CreateService(ctx.Request.Context(), user, body.Label, categoryID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, service)
}

func (h *Handler) UpdateCatalogService(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	serviceID, ok := uuidParam(ctx, "service_id")
	if !ok {
		return
	}
	var body serviceRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}
	categoryID, err := uuidFromString(ctx, body.CategoryID, "category_id")
	if err != nil {
		return
	}
	service, err := h.catalog.UpdateService(ctx.Request.Context(), user, &models.Service{
		ID:         serviceID,
		Label:      body.Label,
		CategoryID: &categoryID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, service)
}

func (h *Handler) DeleteCatalogService(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	serviceID, ok := uuidParam(ctx, "service_id")
	if !ok {
		return
	}
	if err := h.catalog.DeleteService(ctx.Request.Context(), user, serviceID); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
