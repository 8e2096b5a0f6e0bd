package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

type createProjectRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	StartDate   models.ProjectStart `json:"start_date" binding:"required"`
	Location    string              `json:"location"`
	Website     string              `json:"website"`
	Budget      float64             `json:"budget"`
	ServiceIDs  []uuid.UUID         `json:"service_ids" binding:"required"`
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	var body createProjectRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	project, err := h.projects.Create(ctx.Request.Context(), user, &controller.ProjectCreate{
		Title:       body.Title,
		Description: body.Description,
		StartDate:   body.StartDate,
		Location:    body.Location,
		Website:     body.Website,
		Budget:      body.Budget,
		ServiceIDs:  body.ServiceIDs,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, project)
}

// ListMyProjects returns the company's projects with pending incoming
// request counts attached.
func (h *Handler) ListMyProjects(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	summaries, err := h.projects.ListForOwner(ctx.Request.Context(), user)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: summaries, Total: int64(len(summaries))})
}

func (h *Handler) GetProject(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}
	project, err := h.projects.Get(ctx.Request.Context(), user, projectID)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// ProjectMatches ranks candidate vendors for a project.
func (h *Handler) ProjectMatches(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	projectID, ok := uuidParam(ctx, "project_id")
	if !ok {
		return
	}
	// Ownership check reuses the detail path.
	if _, err := h.projects.Get(ctx.Request.Context(), user, projectID); err != nil {
		h.respondError(ctx, err)
		return
	}

	skip, limit := pagination(ctx)
	matches, total, err := h.matching.RankVendorsForProject(ctx.Request.Context(), projectID, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: matches, Total: int64(total)})
}

// AcceptedProjects lists the projects the acting vendor was accepted on.
func (h *Handler) AcceptedProjects(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	skip, limit := pagination(ctx)
	projects, total, err := h.projects.AcceptedForVendor(ctx.Request.Context(), user, skip, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, listResponse{Result: projects, Total: total})
}
