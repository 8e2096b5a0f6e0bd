package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/haku4130/vendors-platform/internal/marketplace/auth"
	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

const tokenTTL = 24 * time.Hour

type registerRequest struct {
	Email       string          `json:"email" binding:"required"`
	Password    string          `json:"password" binding:"required"`
	FullName    string          `json:"full_name"`
	CompanyName string          `json:"company_name"`
	Location    string          `json:"location"`
	LogoURL     string          `json:"logo_url"`
	Role        models.UserRole `json:"role" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) Register(ctx *gin.Context) {
	var body registerRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	user, err := h.accounts.Register(ctx.Request.Context(), &controller.RegisterInput{
		Email:       body.Email,
		Password:    body.Password,
		FullName:    body.FullName,
		CompanyName: body.CompanyName,
		Location:    body.Location,
		LogoURL:     body.LogoURL,
		Role:        body.Role,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (h *Handler) Login(ctx *gin.Context) {
	var body loginRequest
	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	user, err := h.accounts.Authenticate(ctx.Request.Context(), body.Email, body.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, h.jwtSecret, tokenTTL)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) Me(ctx *gin.Context) {
	user, ok := h.currentUser(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, user)
}
