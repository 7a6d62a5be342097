package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/princebakery/pos-api/internal/config"
	domainRepo "github.com/princebakery/pos-api/internal/domain/repository"
	"github.com/princebakery/pos-api/internal/presentation/http/handler"
	"github.com/princebakery/pos-api/internal/presentation/http/middleware"
	"github.com/princebakery/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Product  *handler.ProductHandler
	Category *handler.CategoryHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAuthRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	loginLimiter := middleware.NewLoginRateLimiter(deps.Cfg.RateLimit)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/profile", h.Auth.Profile)

	// Menu (read for everyone, writes for staff)
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/:id", h.Product.Get)

		staff := products.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.POST("", h.Product.Create)
			staff.PUT("/:id", h.Product.Update)
			staff.DELETE("/:id", h.Product.Delete)
			staff.POST("/:id/extras", h.Product.AddExtra)
			staff.DELETE("/:id/extras/:extraId", h.Product.RemoveExtra)
		}
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.List)

		staff := categories.Group("")
		staff.Use(middleware.RequireStaff())
		{
			staff.POST("", h.Category.Create)
			staff.DELETE("/:id", h.Category.Delete)
		}
	}

	// Cart. PATCH on the cart itself switches the fulfillment mode.
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.PATCH("", h.Cart.SetMode)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PATCH("/items/:id", h.Cart.UpdateItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
	}

	// Orders. Checkout honors the Idempotency-Key header so a double-tapped
	// submit replays the first order instead of creating a second one.
	orders := protected.Group("/orders")
	{
		orders.POST("", middleware.Idempotency(deps.IdempotencyRepo), h.Order.Place)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/print", h.Order.Reprint)
		orders.PATCH("/:id/status", middleware.RequireStaff(), h.Order.UpdateStatus)
	}
}
