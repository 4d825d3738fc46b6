package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"agrorent-api/internal/entities"
	"agrorent-api/internal/services"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/utils"
)

// ExportController serves GET /equipments/export, a spreadsheet of the
// caller's own listings.
type ExportController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewExportController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *ExportController {
	return &ExportController{equipmentService: equipmentService, logger: logger}
}

func (ctrl *ExportController) Export(c echo.Context) error {
	if format := c.QueryParam("format"); format != "" && format != "xlsx" {
		return utils.ErrorResponse(c, apperrors.NewBadRequestError("Formato de exportação não suportado"), ctrl.logger)
	}

	ownerID := utils.CurrentUserID(c.Request().Context())
	data, err := ctrl.equipmentService.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return utils.ErrorResponse(c, err, ctrl.logger)
	}

	return ctrl.respondWithXLSX(c, data)
}

var exportHeaders = []string{
	"ID", "Tipo", "Marca", "Modelo", "Ano", "Condição", "Preço (R$/dia)",
	"Cidade", "UF", "Ativo", "Criado em",
}

func equipmentRow(item entities.Equipment) []interface{} {
	var year string
	if item.Year.Valid {
		year = strconv.Itoa(item.Year.Int)
	}
	active := "não"
	if item.IsActive {
		active = "sim"
	}
	return []interface{}{
		item.ID, item.Type, item.Brand, item.Model, year, item.Condition,
		item.Price, item.City, item.State.String, active,
		item.CreatedAt.Format("02/01/2006 15:04"),
	}
}

func (ctrl *ExportController) respondWithXLSX(c echo.Context, data []entities.Equipment) error {
	f := excelize.NewFile()
	sheet := "Meus equipamentos"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &exportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := equipmentRow(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "A", 38)
	f.SetColWidth(sheet, "B", "D", 18)
	f.SetColWidth(sheet, "G", "H", 16)
	f.SetColWidth(sheet, "K", "K", 18)

	fileName := fmt.Sprintf("equipamentos_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response().Writer)
}
