package routes

import (
	"github.com/labstack/echo/v4"

	"agrorent-api/internal/controllers"
)

func runAuthRouter(e *echo.Echo, authCtrl *controllers.AuthController) {
	auth := e.Group("/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)
}
