package routes

import (
	"github.com/gin-gonic/gin"

	"sellora/internal/authz"
	"sellora/internal/handlers"
	"sellora/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	proxyHandler *handlers.ProductProxyHandler,
) *gin.Engine {

	// ---- public
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
		auth.POST("/verify-email", authHandler.VerifyEmail)
	}

	users := r.Group("/api/users")
	{
		users.PATCH("/recover-password", userHandler.RecoverPassword)
		users.PATCH("/recover-password/verify", userHandler.VerifyRecoveryCode)
		users.POST("/verify/reset-password", userHandler.ResetPassword)
	}

	// публичная витрина каталога — без токена
	products := r.Group("/api/products-proxy")
	{
		products.GET("/all", proxyHandler.GetAll)
		products.GET("/search", proxyHandler.Search)
		products.GET("/filter", proxyHandler.Filter)
		products.GET("/:id", proxyHandler.GetByID)
	}

	// ---- protected
	authRequired := middleware.AuthMiddleware(jwtSecret)

	auth.POST("/logout", authRequired, authHandler.Logout)

	admin := r.Group("/api/users/admin", authRequired, middleware.RequireRoles(authz.RoleAdmin))
	{
		admin.GET("/users", userHandler.ListActive)
		admin.PATCH("/deactivate", userHandler.Deactivate)
	}

	owned := r.Group("/api/products-proxy", authRequired)
	{
		owned.GET("/mine", proxyHandler.GetMine)
		owned.POST("/create", proxyHandler.Create)
		owned.PUT("/:id", proxyHandler.Update)
		owned.DELETE("/:id", proxyHandler.Delete)
		owned.POST("/:id/images", proxyHandler.AddImages)
		owned.DELETE("/:id/images/:image_id", proxyHandler.RemoveImage)
	}

	return r
}
