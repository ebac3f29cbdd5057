package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type TwoFactorHandler struct {
	beginSetupUseCase   *usecases.BeginTwoFactorSetupUseCase
	confirmSetupUseCase *usecases.ConfirmTwoFactorSetupUseCase
	disableUseCase      *usecases.DisableTwoFactorUseCase
	logger              logger.Interface
}

func NewTwoFactorHandler(
	beginSetupUC *usecases.BeginTwoFactorSetupUseCase,
	confirmSetupUC *usecases.ConfirmTwoFactorSetupUseCase,
	disableUC *usecases.DisableTwoFactorUseCase,
	logger logger.Interface,
) *TwoFactorHandler {
	return &TwoFactorHandler{
		beginSetupUseCase:   beginSetupUC,
		confirmSetupUseCase: confirmSetupUC,
		disableUseCase:      disableUC,
		logger:              logger,
	}
}

type ConfirmTwoFactorRequest struct {
	Code string `json:"code" binding:"required,len=6,numeric"`
}

type DisableTwoFactorRequest struct {
	Password string `json:"password" binding:"required"`
}

func (h *TwoFactorHandler) BeginSetup(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.beginSetupUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "scan the QR code with an authenticator app", gin.H{
		"secret":      result.Secret,
		"otpauth_url": result.OtpauthURL,
		"qr_code":     result.QRCodeBase64,
	})
}

func (h *TwoFactorHandler) ConfirmSetup(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req ConfirmTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.confirmSetupUseCase.Execute(c.Request.Context(), usecases.ConfirmTwoFactorSetupCommand{
		UserID: userID,
		Code:   req.Code,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Shown exactly once; the plaintext codes are not retrievable later
	utils.SuccessResponse(c, http.StatusOK, "two-factor authentication enabled", gin.H{
		"backup_codes": result.BackupCodes,
	})
}

func (h *TwoFactorHandler) Disable(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req DisableTwoFactorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.disableUseCase.Execute(c.Request.Context(), usecases.DisableTwoFactorCommand{
		UserID:   userID,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "two-factor authentication disabled", nil)
}
