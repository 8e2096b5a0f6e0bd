package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type createVendorProfileRequest struct {
	MainGoal       string      `json:"main_goal"`
	SalesEmail     string      `json:"sales_email"`
	ContactPhone   string      `json:"contact_phone"`
	CompanyWebsite string      `json:"company_website"`
	Description    string      `json:"description"`
	EmployeeCount  int         `json:"employee_count"`
	FoundedYear    int         `json:"founded_year"`
	Turnover       float64     `json:"turnover"`
	MinProjectSize float64     `json:"min_project_size"`
	AvgHourlyRate  float64     `json:"avg_hourly_rate"`
	ServiceIDs     []uuid.UUID `json:"service_ids" binding:"required"`
}

func (h *Handler) CreateVendorProfile(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body createVendorProfileRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	profile, err := h.vendors.CreateProfile(ctx.Request.Context(), user, &controller.VendorProfileCreate{
		MainGoal:       body.MainGoal,
		SalesEmail:     body.SalesEmail,
		ContactPhone:   body.ContactPhone,
		CompanyWebsite: body.CompanyWebsite,
		Description:    body.Description,
		EmployeeCount:  body.EmployeeCount,
		FoundedYear:    body.FoundedYear,
		Turnover:       body.Turnover,
		MinProjectSize: body.MinProjectSize,
		AvgHourlyRate:  body.AvgHourlyRate,
		ServiceIDs:     body.ServiceIDs,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, profile)
}

func (h *Handler) MyVendorProfile(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	view, err := h.vendors.ProfileForUser(ctx.Request.Context(), user)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (h *Handler) GetVendor(ctx *gin.Context) {
	vendorID, ok := uuidParam(ctx, "vendor_id")
	if !ok {
		return
	}
	view, err := h.vendors.Get(ctx.Request.Context(), vendorID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SearchVendors filters the vendor pool by offered services and location.
// Repeated service_id params accumulate.
func (h *Handler) SearchVendors(ctx *gin.Context) {
	var serviceIDs []uuid.UUID
	for _, raw := range ctx.QueryArray("service_id") {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid service_id"})
			return
		}
		serviceIDs = append(serviceIDs, id)
	}
	location := ctx.Query("location")

	skip, limit := pagination(ctx)
	views, total, err := h.vendors.Search(ctx.Request.Context(), serviceIDs, location, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: views, Total: int64(total)})
}

// VendorMatches ranks candidate projects for the acting vendor.
func (h *Handler) VendorMatches(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	if user.Role != models.RoleVendor || user.VendorProfile == nil {
		h.respondError(ctx, e.ErrForbidden)
		return
	}

	skip, limit := pagination(ctx)
	matches, total, err := h.matching.RankProjectsForVendor(ctx.Request.Context(), user.VendorProfile.ID, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: matches, Total: int64(total)})
}
