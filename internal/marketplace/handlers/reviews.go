package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
)

type createReviewRequest struct {
	ReviewedUserID uuid.UUID `json:"reviewed_user_id" binding:"required"`
	Rating         int       `json:"rating" binding:"required"`
	Comment        string    `json:"comment"`
}

func (h *Handler) CreateReview(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body createReviewRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	review, err := h.reviews.Create(ctx.Request.Context(), user, &controller.ReviewCreate{
		ReviewedUserID: body.ReviewedUserID,
		Rating:         body.Rating,
		Comment:        body.Comment,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, review)
}

func (h *Handler) UserReviews(ctx *gin.Context) {
	userID, ok := uuidParam(ctx, "user_id")
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	reviews, total, err := h.reviews.ForUser(ctx.Request.Context(), userID, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: reviews, Total: total})
}

func (h *Handler) VendorReviews(ctx *gin.Context) {
	vendorID, ok := uuidParam(ctx, "vendor_id")
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	reviews, total, err := h.reviews.ForVendor(ctx.Request.Context(), vendorID, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: reviews, Total: total})
}

// MyReviews lists reviews written by the acting user.
func (h *Handler) MyReviews(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	reviews, total, err := h.reviews.ByAuthor(ctx.Request.Context(), user, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: reviews, Total: total})
}

// MyReceivedReviews lists reviews about the acting user, with the rating
// aggregate.
func (h *Handler) MyReceivedReviews(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	reviews, total, err := h.reviews.ForUser(ctx.Request.Context(), user.ID, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	rating, _, err := h.reviews.Stats(ctx.Request.Context(), user.ID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"result": reviews, "total": total, "rating": rating})
}
