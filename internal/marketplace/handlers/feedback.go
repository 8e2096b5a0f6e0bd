package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type submitFeedbackRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) SubmitFeedback(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body submitFeedbackRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	if _, err := h.feedback.Submit(ctx.Request.Context(), user, body.Message); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Feedback received"})
}

// ListFeedback is superuser-only; the gate lives in the service.
func (h *Handler) ListFeedback(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	feedback, total, err := h.feedback.List(ctx.Request.Context(), user, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: feedback, Total: total})
}
