package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddToShortlist(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}
	vendorID, ok := uuidParam(ctx, "vendor_id")
	if !ok {
		return
	}
	if err := h.shortlist.Add(ctx.Request.Context(), user, projectID, vendorID); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFromShortlist(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}
	vendorID, ok := uuidParam(ctx, "vendor_id")
	if !ok {
		return
	}
	if err := h.shortlist.Remove(ctx.Request.Context(), user, projectID, vendorID); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *Handler) ListShortlist(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}
	views, err := h.shortlist.Vendors(ctx.Request.Context(), user, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: views, Total: int64(len(views))})
}
