// Package user 提供用户相关的 HTTP Handler
package user

import (
	"github.com/gin-gonic/gin"

	"github.com/otelrez/hotel-reservation-backend/internal/common/handler"
	"github.com/otelrez/hotel-reservation-backend/internal/common/response"
	userService "github.com/otelrez/hotel-reservation-backend/internal/service/user"
)

// Handler 用户处理器
type Handler struct {
	userService *userService.UserService
}

// NewHandler 创建用户处理器
func NewHandler(userSvc *userService.UserService) *Handler {
	return &Handler{userService: userSvc}
}

// Me 获取当前用户资料
// @Summary 获取当前用户资料
// @Tags 用户
// @Produce json
// @Success 200 {object} response.Response{data=auth.UserInfo}
// @Security BearerAuth
// @Router /users/me [get]
func (h *Handler) Me(c *gin.Context) {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	info, err := h.userService.GetProfile(c.Request.Context(), user.ID)
	handler.MustSucceed(c, err, info)
}

// List 获取用户列表
// @Summary 获取用户列表（管理员）
// @Tags 用户
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Param email query string false "邮箱，子串匹配"
// @Success 200 {object} response.Response{data=response.ListData}
// @Security BearerAuth
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	var req userService.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	list, total, err := h.userService.List(c.Request.Context(), &req)
	handler.MustSucceedList(c, err, list, total)
}

// ToggleAdmin 切换目标用户的管理员身份
// @Summary 切换管理员身份（管理员），不允许操作自己
// @Tags 用户
// @Produce json
// @Param id path int true "用户 ID"
// @Success 200 {object} response.Response{data=auth.UserInfo}
// @Security BearerAuth
// @Router /users/{id}/toggle-admin [put]
func (h *Handler) ToggleAdmin(c *gin.Context) {
	operator, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	targetID, ok := handler.ParseID(c, "用户")
	if !ok {
		return
	}

	info, err := h.userService.ToggleAdmin(c.Request.Context(), operator.ID, targetID)
	handler.MustSucceed(c, err, info)
}

// ToggleActive 启用或禁用目标用户
// @Summary 切换用户启用状态（管理员），不允许操作自己
// @Tags 用户
// @Produce json
// @Param id path int true "用户 ID"
// @Success 200 {object} response.Response{data=auth.UserInfo}
// @Security BearerAuth
// @Router /users/{id}/toggle-active [put]
func (h *Handler) ToggleActive(c *gin.Context) {
	operator, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	targetID, ok := handler.ParseID(c, "用户")
	if !ok {
		return
	}

	info, err := h.userService.ToggleActive(c.Request.Context(), operator.ID, targetID)
	handler.MustSucceed(c, err, info)
}
