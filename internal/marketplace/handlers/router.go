package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/haku4130/vendors-platform/internal/marketplace/auth"
)

// NewRouter wires the full HTTP surface. Everything except registration,
// login, the catalog and public vendor reads sits behind the auth
// middleware.
func NewRouter(h *Handler, loader auth.UserLoader, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := auth.Middleware(h.jwtSecret, loader)

	api := r.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		accounts := api.Group("/auth")
		{
			accounts.POST("/register", h.Register)
			accounts.POST("/login", h.Login)
			accounts.GET("/me", authRequired, h.Me)
		}

		catalog := api.Group("/catalog")
		{
			catalog.GET("/categories", h.ListCategories)
			catalog.POST("/categories", authRequired, h.CreateCategory)
			catalog.PATCH("/categories/:category_id", authRequired, h.UpdateCategory)
			catalog.POST("/services", authRequired, h.CreateCatalogService)
			catalog.PATCH("/services/:service_id", authRequired, h.UpdateCatalogService)
			catalog.DELETE("/services/:service_id", authRequired, h.DeleteCatalogService)
		}

		projects := api.Group("/projects", authRequired)
		{
			projects.POST("", h.CreateProject)
			projects.GET("", h.ListMyProjects)
			projects.GET("/accepted", h.AcceptedProjects)
			projects.GET("/:project_id", h.GetProject)
			projects.GET("/:project_id/matches", h.ProjectMatches)
			projects.GET("/:project_id/requests", h.ListProjectRequests)
			projects.POST("/:project_id/shortlist/:vendor_id", h.AddToShortlist)
			projects.DELETE("/:project_id/shortlist/:vendor_id", h.RemoveFromShortlist)
			projects.GET("/:project_id/shortlist", h.ListShortlist)
		}

		vendors := api.Group("/vendors")
		{
			vendors.POST("", authRequired, h.CreateVendorProfile)
			vendors.GET("/me", authRequired, h.MyVendorProfile)
			vendors.GET("/me/matches", authRequired, h.VendorMatches)
			vendors.GET("/search", h.SearchVendors)
			vendors.GET("/:vendor_id", h.GetVendor)
			vendors.GET("/:vendor_id/reviews", h.VendorReviews)
		}

		requests := api.Group("/requests", authRequired)
		{
			requests.POST("", h.CreateRequest)
			requests.GET("/incoming", h.IncomingRequests)
			requests.POST("/:request_id/accept", h.AcceptRequest)
			requests.POST("/:request_id/decline", h.DeclineRequest)
		}

		reviews := api.Group("/reviews", authRequired)
		{
			reviews.POST("", h.CreateReview)
			reviews.GET("/me", h.MyReviews)
			reviews.GET("/me/received", h.MyReceivedReviews)
			reviews.GET("/users/:user_id", h.UserReviews)
		}

		feedback := api.Group("/feedback", authRequired)
		{
			feedback.POST("", h.SubmitFeedback)
			feedback.GET("", h.ListFeedback)
		}
	}

	return r
}
