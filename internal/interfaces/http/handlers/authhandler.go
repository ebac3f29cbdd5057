package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/config"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type AuthHandler struct {
	registerUseCase       *usecases.RegisterWithPasswordUseCase
	loginUseCase          *usecases.LoginWithPasswordUseCase
	logoutUseCase         *usecases.LogoutUseCase
	getCurrentUserUseCase *usecases.GetCurrentUserUseCase
	cookieConfig          config.CookieConfig
	logger                logger.Interface
}

func NewAuthHandler(
	registerUC *usecases.RegisterWithPasswordUseCase,
	loginUC *usecases.LoginWithPasswordUseCase,
	logoutUC *usecases.LogoutUseCase,
	getCurrentUserUC *usecases.GetCurrentUserUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase:       registerUC,
		loginUseCase:          loginUC,
		logoutUseCase:         logoutUC,
		getCurrentUserUseCase: getCurrentUserUC,
		cookieConfig:          cookieConfig,
		logger:                logger,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,strongpw"`
}

type LoginRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	TwoFactorCode string `json:"two_factor_code"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.RegisterWithPasswordCommand{
		Email:     req.Email,
		Name:      req.Name,
		Password:  req.Password,
		IPAddress: c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	result, err := h.registerUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusCreated, "registration successful", gin.H{
		"user":       result.User.GetDisplayInfo(),
		"expires_in": result.ExpiresIn,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.LoginWithPasswordCommand{
		Email:         req.Email,
		Password:      req.Password,
		TwoFactorCode: req.TwoFactorCode,
		IPAddress:     c.ClientIP(),
		UserAgent:     c.GetHeader("User-Agent"),
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Password passed but the account needs its second factor. No cookie and
	// no session exist at this point.
	if result.RequiresTwoFactor {
		utils.SuccessResponse(c, http.StatusOK, "two-factor code required", gin.H{
			"require_two_factor": true,
			"user_id":            result.User.ID(),
		})
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "login successful", gin.H{
		"user":             result.User.GetDisplayInfo(),
		"expires_in":       result.ExpiresIn,
		"used_backup_code": result.UsedBackupCode,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	cmd := usecases.LogoutCommand{
		UserID:    userID,
		SessionID: middleware.CurrentSessionID(c),
	}
	if err := h.logoutUseCase.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearAuthCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "logout successful", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	result, err := h.getCurrentUserUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"user":               result.User.GetDisplayInfo(),
		"two_factor_enabled": result.TwoFactorEnabled,
	})
}
