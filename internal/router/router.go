package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/bertdev/bookmarks-api/internal/handler"
	"github.com/bertdev/bookmarks-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance. Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the auth, user and bookmark endpoints. Signup and
// signin live under /auth without middleware; everything else requires a
// valid Bearer session token verified by JWTAuth with the given secret.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, b *handler.BookmarkHandler, jwtSecret string) {
	auth := e.Group("/auth")
	auth.POST("/signup", a.Signup)
	auth.POST("/signin", a.Signin)

	users := e.Group("/users")
	users.Use(middleware.JWTAuth(jwtSecret))
	users.GET("/me", u.Me)
	users.PATCH("", u.Edit)

	bookmarks := e.Group("/bookmarks")
	bookmarks.Use(middleware.JWTAuth(jwtSecret))
	bookmarks.POST("", b.Create)
	bookmarks.GET("", b.List)
	bookmarks.GET("/:id", b.GetByID)
	bookmarks.PATCH("/:id", b.Edit)
	bookmarks.DELETE("/:id", b.Delete)
}
