package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/db"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type createRequestRequest struct {
	ProjectID       uuid.UUID               `json:"project_id" binding:"required"`
	VendorProfileID uuid.UUID               `json:"vendor_profile_id" binding:"required"`
	Initiator       models.RequestInitiator `json:"initiator" binding:"required"`
}

func (h *Handler) CreateRequest(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body createRequestRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	request, err := h.requests.Create(ctx.Request.Context(), user, body.ProjectID, body.VendorProfileID, body.Initiator)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, request)
}

func (h *Handler) AcceptRequest(ctx *gin.Context) {
	h.resolveRequest(ctx, models.StatusAccepted)
}

func (h *Handler) DeclineRequest(ctx *gin.Context) {
	h.resolveRequest(ctx, models.StatusDeclined)
}

func (h *Handler) resolveRequest(ctx *gin.Context, status models.RequestStatus) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	requestID, ok := uuidParam(ctx, "request_id")
	if !ok {
		return
	}
	request, err := h.requests.Resolve(ctx.Request.Context(), user, requestID, status)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, request)
}

// ListProjectRequests returns a project's requests to its owner, optionally
// filtered by initiator and status.
func (h *Handler) ListProjectRequests(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}

	var filter db.RequestFilter
	if raw := ctx.Query("initiator"); raw != "" {
		initiator := models.RequestInitiator(raw)
		filter.Initiator = &initiator
	}
	if raw := ctx.Query("status"); raw != "" {
		status := models.RequestStatus(raw)
		filter.Status = &status
	}

	skip, limit := pagination(ctx)
	requests, total, err := h.requests.ListForProject(ctx.Request.Context(), user, projectID, filter, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: requests, Total: total})
}

// IncomingRequests returns company-initiated requests against the acting
// vendor's profile.
func (h *Handler) IncomingRequests(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	requests, total, err := h.requests.Incoming(ctx.Request.Context(), user, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: requests, Total: total})
}
