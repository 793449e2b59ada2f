package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/slt_feedback_app/internal/core/ports/services"
	"github.com/SscSPs/slt_feedback_app/internal/dto"
	"github.com/SscSPs/slt_feedback_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves user management under /admin.
type adminHandler struct {
	userService portssvc.UserSvcFacade
}

func newAdminHandler(us portssvc.UserSvcFacade) *adminHandler {
	return &adminHandler{userService: us}
}

// addUser godoc
// @Summary Create a user
// @Description Creates a user with the default User role.
// @Tags admin
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserRequest true "User details"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse "All fields are required"
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Security BearerAuth
// @Router /admin/addUser [post]
func (h *adminHandler) addUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusCreated, dto.ToUserResponse(user), "User created successfully")
}

// getAllUsers godoc
// @Summary List users
// @Description Pages through active non-admin users, newest first.
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.ListUsersResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Security BearerAuth
// @Router /admin/getAllUsers [get]
func (h *adminHandler) getAllUsers(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, dto.ToListUserResponse(users, dto.NewPaginationMeta(page, total)), "All users fetched successfully")
}

// updateUser godoc
// @Summary Update a user
// @Description Sets the full name and/or password of an active user. Empty fields are ignored.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param body body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /admin/updateUser/{id} [patch]
func (h *adminHandler) updateUser(c *gin.Context) {
	targetID := c.Param("id")
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), targetID, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), "User updated successfully")
}

// deleteUser godoc
// @Summary Soft-delete a user
// @Description Marks the user deleted and revokes their refresh token. Deleting twice returns 404.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse "Forbidden: Admins only"
// @Failure 404 {object} dto.ErrorResponse "User not found or already deleted"
// @Security BearerAuth
// @Router /admin/deleteUser/{id} [patch]
func (h *adminHandler) deleteUser(c *gin.Context) {
	targetID := c.Param("id")
	if err := h.userService.DeleteUser(c.Request.Context(), targetID); err != nil {
		_ = c.Error(err)
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("User deleted by admin",
		slog.String("target_user_id", targetID), slog.String("admin_user_id", adminID))
	respond(c, http.StatusOK, nil, "User deleted successfully")
}
