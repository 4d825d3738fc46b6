package controllers

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/services"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/utils"
)

const defaultListLimit = 100

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(equipmentService services.EquipmentServiceInterface, logger *zap.Logger) *EquipmentController {
	return &EquipmentController{equipmentService: equipmentService, logger: logger}
}

func (ctrl *EquipmentController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

// List serves GET /equipments. With mine=1 (or mine=true) it returns the
// caller's own listings, which requires a valid token even though the route
// itself is public.
func (ctrl *EquipmentController) List(c echo.Context) error {
	if mine := c.QueryParam("mine"); mine == "1" || mine == "true" {
		ownerID := utils.CurrentUserID(c.Request().Context())
		if ownerID == "" {
			return ctrl.errorResponse(c, apperrors.ErrUnauthorized)
		}
		data, err := ctrl.equipmentService.ListMine(c.Request().Context(), ownerID)
		if err != nil {
			return ctrl.errorResponse(c, err)
		}
		return c.JSON(http.StatusOK, data)
	}

	limit := uint64(defaultListLimit)
	if raw := c.QueryParam("limit"); raw != "" {
		if parsed, err := strconv.ParseUint(raw, 10, 64); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	data, err := ctrl.equipmentService.ListAll(c.Request().Context(), limit)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

func (ctrl *EquipmentController) Search(c echo.Context) error {
	var criteria dto.SearchEquipmentDTO

	if err := c.Bind(&criteria); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Parâmetros de busca inválidos"))
	}
	if err := c.Validate(&criteria); err != nil {
		return ctrl.errorResponse(c, err)
	}

	result, err := ctrl.equipmentService.Search(c.Request().Context(), criteria)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

func (ctrl *EquipmentController) Detail(c echo.Context) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFound)
	}

	detail, err := ctrl.equipmentService.Detail(c.Request().Context(), id)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (ctrl *EquipmentController) Create(c echo.Context) error {
	ownerID := utils.CurrentUserID(c.Request().Context())

	var payload dto.CreateEquipmentDTO
	if err := c.Bind(&payload); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Formato de dados inválido"))
	}
	if err := c.Validate(&payload); err != nil {
		return ctrl.errorResponse(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrPhotoRequired)
	}

	created, err := ctrl.equipmentService.Create(c.Request().Context(), ownerID, payload, form.File["photos"])
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (ctrl *EquipmentController) Update(c echo.Context) error {
	ownerID := utils.CurrentUserID(c.Request().Context())
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFoundOrForbidden)
	}

	var patch dto.UpdateEquipmentDTO
	if err := c.Bind(&patch); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Formato de dados inválido"))
	}
	if err := c.Validate(&patch); err != nil {
		return ctrl.errorResponse(c, err)
	}

	updated, err := ctrl.equipmentService.Update(c.Request().Context(), id, ownerID, patch)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (ctrl *EquipmentController) Delete(c echo.Context) error {
	ownerID := utils.CurrentUserID(c.Request().Context())
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFoundOrForbidden)
	}

	if err := ctrl.equipmentService.Delete(c.Request().Context(), id, ownerID); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (ctrl *EquipmentController) AddPhotos(c echo.Context) error {
	ownerID := utils.CurrentUserID(c.Request().Context())
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFoundOrForbidden)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return ctrl.errorResponse(c, apperrors.ErrPhotoRequired)
	}

	photos, err := ctrl.equipmentService.AddPhotos(c.Request().Context(), id, ownerID, form.File["photos"])
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusCreated, photos)
}

func (ctrl *EquipmentController) DeletePhoto(c echo.Context) error {
	ownerID := utils.CurrentUserID(c.Request().Context())
	id := c.Param("id")
	photoID := c.Param("photoId")
	if _, err := uuid.Parse(id); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFoundOrForbidden)
	}
	if _, err := uuid.Parse(photoID); err != nil {
		return ctrl.errorResponse(c, apperrors.ErrNotFoundOrForbidden)
	}

	if err := ctrl.equipmentService.DeletePhoto(c.Request().Context(), id, photoID, ownerID); err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
