package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type PreferenceHandler struct {
	getPreferencesUseCase   *usecases.GetPreferencesUseCase
	getPreferenceUseCase    *usecases.GetPreferenceUseCase
	setPreferenceUseCase    *usecases.SetPreferenceUseCase
	deletePreferenceUseCase *usecases.DeletePreferenceUseCase
	deleteAllPreferencesUC  *usecases.DeleteAllPreferencesUseCase
	logger                  logger.Interface
}

func NewPreferenceHandler(
	getPreferencesUC *usecases.GetPreferencesUseCase,
	getPreferenceUC *usecases.GetPreferenceUseCase,
	setPreferenceUC *usecases.SetPreferenceUseCase,
	deletePreferenceUC *usecases.DeletePreferenceUseCase,
	deleteAllPreferencesUC *usecases.DeleteAllPreferencesUseCase,
	logger logger.Interface,
) *PreferenceHandler {
	return &PreferenceHandler{
		getPreferencesUseCase:   getPreferencesUC,
		getPreferenceUseCase:    getPreferenceUC,
		setPreferenceUseCase:    setPreferenceUC,
		deletePreferenceUseCase: deletePreferenceUC,
		deleteAllPreferencesUC:  deleteAllPreferencesUC,
		logger:                  logger,
	}
}

type SetPreferenceRequest struct {
	Key   string          `json:"key" binding:"required,max=100"`
	Value json.RawMessage `json:"value" binding:"required"`
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	prefs, err := h.getPreferencesUseCase.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"preferences": prefs})
}

func (h *PreferenceHandler) GetOne(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	key := c.Param("key")
	value, err := h.getPreferenceUseCase.Execute(c.Request.Context(), userID, key)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"key": key, "value": value})
}

func (h *PreferenceHandler) Set(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.setPreferenceUseCase.Execute(c.Request.Context(), usecases.SetPreferenceCommand{
		UserID: userID,
		Key:    req.Key,
		Value:  req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preference saved", nil)
}

func (h *PreferenceHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	key := c.Param("key")
	if key == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "preference key is required")
		return
	}

	err := h.deletePreferenceUseCase.Execute(c.Request.Context(), usecases.DeletePreferenceCommand{
		UserID: userID,
		Key:    key,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "preference deleted", nil)
}

func (h *PreferenceHandler) DeleteAll(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	if err := h.deleteAllPreferencesUC.Execute(c.Request.Context(), userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "all preferences deleted", nil)
}
