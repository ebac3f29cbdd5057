package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitios/internal/application/user/usecases"
	"sitios/internal/interfaces/http/middleware"
	"sitios/internal/shared/logger"
	"sitios/internal/shared/utils"
)

type AdminHandler struct {
	listUsersUseCase  *usecases.ListUsersUseCase
	deleteUserUseCase *usecases.DeleteUserUseCase
	logger            logger.Interface
}

func NewAdminHandler(
	listUsersUC *usecases.ListUsersUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *AdminHandler {
	return &AdminHandler{
		listUsersUseCase:  listUsersUC,
		deleteUserUseCase: deleteUserUC,
		logger:            logger,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.listUsersUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page, pageSize)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	err = h.deleteUserUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		ActorID:  actorID,
		TargetID: uint(targetID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user deleted", nil)
}
