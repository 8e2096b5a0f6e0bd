// Package handlers exposes the marketplace over HTTP/JSON, bridging the
// transport layer and business logic.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/haku4130/vendors-platform/internal/marketplace/auth"
	"github.com/haku4130/vendors-platform/internal/marketplace/controller"
	e "github.com/haku4130/vendors-platform/internal/marketplace/errors"
	"github.com/haku4130/vendors-platform/internal/marketplace/models"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	accounts  *controller.AccountService
	catalog   *controller.CatalogService
	projects  *controller.ProjectService
	vendors   *controller.VendorService
	matching  *controller.MatchingService
	requests  *controller.RequestService
	shortlist *controller.ShortlistService
	reviews   *controller.ReviewService
	feedback  *controller.FeedbackService
	jwtSecret string
	logger    *zap.Logger
}

type Config struct {
	Accounts  *controller.AccountService
	Catalog   *controller.CatalogService
	Projects  *controller.ProjectService
	Vendors   *controller.VendorService
	Matching  *controller.MatchingService
	Requests  *controller.RequestService
	Shortlist *controller.ShortlistService
	Reviews   *controller.ReviewService
	Feedback  *controller.FeedbackService
	JWTSecret string
}

func NewHandler(cfg Config, logger *zap.Logger) *Handler {
	return &Handler{
		accounts:  cfg.Accounts,
		catalog:   cfg.Catalog,
		projects:  cfg.Projects,
		vendors:   cfg.Vendors,
		matching:  cfg.Matching,
		requests:  cfg.Requests,
		shortlist: cfg.Shortlist,
		reviews:   cfg.Reviews,
		feedback:  cfg.Feedback,
		jwtSecret: cfg.JWTSecret,
		logger:    logger.Named("http_handler"),
	}
}

// respondError maps domain errors to HTTP statuses. Anything unmapped is a
// 500 and gets logged with the request path.
func (h *Handler) respondError(ctx *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, e.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, e.ErrInvalidState), errors.Is(err, e.ErrInvalidInput):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		h.logger.Error("unhandled error",
			zap.String("path", ctx.FullPath()),
			zap.Error(err),
		)
		ctx.JSON(status, gin.H{"detail": "internal server error"})
		return
	}
	ctx.JSON(status, gin.H{"detail": err.Error()})
}

func (h *Handler) currentUser(ctx *gin.Context) (*models.User, bool) {
	user, ok := auth.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"detail": "not authenticated"})
	}
	return user, ok
}

func uuidParam(ctx *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

func uuidFromString(ctx *gin.Context, raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"detail": "invalid " + name})
		return uuid.Nil, err
	}
	return id, nil
}

// pagination reads skip/limit query params, clamping limit to a sane range.
func pagination(ctx *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(defaultPageLimit)))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return skip, limit
}

// listResponse is the envelope for every paginated collection.
type listResponse struct {
	Result any   `json:"result"`
	Total  int64 `json:"total"`
}
