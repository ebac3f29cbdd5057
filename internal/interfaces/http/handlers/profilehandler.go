package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type ProfileHandler struct {
	updateProfileUseCase  *usecases.UpdateProfileUseCase
	changePasswordUseCase *usecases.ChangePasswordUseCase
	logger                logger.Interface
}

func NewProfileHandler(
	updateProfileUC *usecases.UpdateProfileUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		updateProfileUseCase:  updateProfileUC,
		changePasswordUseCase: changePasswordUC,
		logger:                logger,
	}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,strongpw"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.updateProfileUseCase.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated", gin.H{
		"user": updated.GetDisplayInfo(),
	})
}

func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.changePasswordUseCase.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:           userID,
		CurrentPassword:  req.CurrentPassword,
		NewPassword:      req.NewPassword,
		CurrentSessionID: middleware.CurrentSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed", nil)
}
