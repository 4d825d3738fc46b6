package routes

import (
	"github.com/labstack/echo/v4"

	"agrorent-api/internal/controllers"
	"agrorent-api/pkg/middleware"
)

func runUserRouter(e *echo.Echo, userCtrl *controllers.UserController, authMW *middleware.AuthMiddleware) {
	g := e.Group("/users", authMW.Auth)
	g.GET("/me", userCtrl.Me)
	g.PATCH("/me", userCtrl.UpdateMe)
}
