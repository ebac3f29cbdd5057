package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type SessionHandler struct {
	listSessionsUseCase     *usecases.ListSessionsUseCase
	endSessionUseCase       *usecases.EndSessionUseCase
	endOtherSessionsUseCase *usecases.EndOtherSessionsUseCase
	logger                  logger.Interface
}

func NewSessionHandler(
	listSessionsUC *usecases.ListSessionsUseCase,
	endSessionUC *usecases.EndSessionUseCase,
	endOtherSessionsUC *usecases.EndOtherSessionsUseCase,
	logger logger.Interface,
) *SessionHandler {
	return &SessionHandler{
		listSessionsUseCase:     listSessionsUC,
		endSessionUseCase:       endSessionUC,
		endOtherSessionsUseCase: endOtherSessionsUC,
		logger:                  logger,
	}
}

func (h *SessionHandler) List(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	sessions, err := h.listSessionsUseCase.Execute(c.Request.Context(), userID, middleware.CurrentSessionID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"sessions": sessions})
}

func (h *SessionHandler) End(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	sessionID := c.Param("id")
	if sessionID == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "session ID is required")
		return
	}

	err := h.endSessionUseCase.Execute(c.Request.Context(), usecases.EndSessionCommand{
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "session ended", nil)
}

func (h *SessionHandler) EndOthers(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	err := h.endOtherSessionsUseCase.Execute(c.Request.Context(), usecases.EndOtherSessionsCommand{
		UserID:           userID,
		CurrentSessionID: middleware.CurrentSessionID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "other sessions ended", nil)
}
