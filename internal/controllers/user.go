package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agrorent-api/internal/dto"
	"agrorent-api/internal/entities"
	"agrorent-api/internal/services"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(userService services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: userService, logger: logger}
}

func (ctrl *UserController) errorResponse(c echo.Context, err error) error {
	return utils.ErrorResponse(c, err, ctrl.logger)
}

func toProfileDTO(user *entities.User) dto.UserProfileDTO {
	return dto.UserProfileDTO{
		ID:        user.ID,
		FullName:  user.FullName,
		Email:     user.Email,
		CPF:       user.CPF,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}

func (ctrl *UserController) Me(c echo.Context) error {
	userID := utils.CurrentUserID(c.Request().Context())

	user, err := ctrl.userService.Profile(c.Request().Context(), userID)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toProfileDTO(user))
}

func (ctrl *UserController) UpdateMe(c echo.Context) error {
	userID := utils.CurrentUserID(c.Request().Context())

	var patch dto.UpdateProfileDTO
	if err := c.Bind(&patch); err != nil {
		return ctrl.errorResponse(c, apperrors.NewBadRequestError("Formato de dados inválido"))
	}
	if err := c.Validate(&patch); err != nil {
		return ctrl.errorResponse(c, err)
	}

	user, err := ctrl.userService.UpdateProfile(c.Request().Context(), userID, patch)
	if err != nil {
		return ctrl.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, toProfileDTO(user))
}
