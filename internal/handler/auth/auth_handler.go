// Package auth 提供认证相关的 HTTP Handler
package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/otelrez/hotel-reservation-backend/internal/common/handler"
	"github.com/otelrez/hotel-reservation-backend/internal/common/response"
	authService "github.com/otelrez/hotel-reservation-backend/internal/service/auth"
)

// Handler 认证处理器
type Handler struct {
	authService *authService.AuthService
}

// NewHandler 创建认证处理器
func NewHandler(authSvc *authService.AuthService) *Handler {
	return &Handler{authService: authSvc}
}

// Register 用户注册
// @Summary 用户注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body authService.RegisterRequest true "请求参数"
// @Success 201 {object} response.Response{data=authService.UserInfo}
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req authService.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	info, err := h.authService.Register(c.Request.Context(), &req)
	if handler.HandleError(c, err) {
		return
	}

	response.Created(c, info)
}

// Token 登录换取访问令牌，接受 OAuth2 密码模式的表单参数
// @Summary 登录换取访问令牌
// @Tags 认证
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "邮箱"
// @Param password formData string true "密码"
// @Success 200 {object} response.Response{data=authService.TokenResponse}
// @Router /token [post]
func (h *Handler) Token(c *gin.Context) {
	var req authService.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &req)
	handler.MustSucceed(c, err, result)
}
