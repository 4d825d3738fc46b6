package routes

import (
	"github.com/labstack/echo/v4"

	"agrorent-api/internal/controllers"
	"agrorent-api/pkg/middleware"
)

func runEquipmentRouter(e *echo.Echo, equipmentCtrl *controllers.EquipmentController, exportCtrl *controllers.ExportController, authMW *middleware.AuthMiddleware) {
	g := e.Group("/equipments")

	// mine=1 needs the token when present, the rest of the listing is public
	g.GET("", equipmentCtrl.List, authMW.OptionalAuth)
	g.GET("/search", equipmentCtrl.Search)
	g.GET("/export", exportCtrl.Export, authMW.Auth)
	g.GET("/:id", equipmentCtrl.Detail)

	g.POST("", equipmentCtrl.Create, authMW.Auth)
	g.PATCH("/:id", equipmentCtrl.Update, authMW.Auth)
	g.DELETE("/:id", equipmentCtrl.Delete, authMW.Auth)

	g.POST("/:id/photos", equipmentCtrl.AddPhotos, authMW.Auth)
	g.DELETE("/:id/photos/:photoId", equipmentCtrl.DeletePhoto, authMW.Auth)
}
