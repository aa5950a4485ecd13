// Package review 提供评价相关的 HTTP Handler
package review

import (
	"github.com/gin-gonic/gin"

	"github.com/otelrez/hotel-reservation-backend/internal/common/handler"
	"github.com/otelrez/hotel-reservation-backend/internal/common/response"
	reviewService "github.com/otelrez/hotel-reservation-backend/internal/service/review"
)

// Handler 评价处理器
type Handler struct {
	reviewService *reviewService.ReviewService
}

// NewHandler 创建评价处理器
func NewHandler(reviewSvc *reviewService.ReviewService) *Handler {
	return &Handler{reviewService: reviewSvc}
}

// ListByHotel 获取酒店的评价列表
// @Summary 获取酒店的评价列表
// @Tags 评价
// @Produce json
// @Param id path int true "酒店 ID"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /hotels/{id}/reviews [get]
func (h *Handler) ListByHotel(c *gin.Context) {
	hotelID, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	var req reviewService.ReviewListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	list, total, err := h.reviewService.ListByHotel(c.Request.Context(), hotelID, &req)
	handler.MustSucceedList(c, err, list, total)
}

// ListMine 获取当前用户的评价列表
// @Summary 获取我的评价列表
// @Tags 评价
// @Produce json
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=response.ListData}
// @Security BearerAuth
// @Router /users/me/reviews [get]
func (h *Handler) ListMine(c *gin.Context) {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	var req reviewService.ReviewListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	list, total, err := h.reviewService.ListByUser(c.Request.Context(), user.ID, &req)
	handler.MustSucceedList(c, err, list, total)
}

// Create 为酒店创建评价
// @Summary 创建评价，作者为当前用户
// @Tags 评价
// @Accept json
// @Produce json
// @Param request body reviewService.CreateReviewRequest true "请求参数"
// @Success 201 {object} response.Response{data=reviewService.ReviewInfo}
// @Security BearerAuth
// @Router /reviews [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	var req reviewService.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	info, err := h.reviewService.Create(c.Request.Context(), user.ID, &req)
	if handler.HandleError(c, err) {
		return
	}

	response.Created(c, info)
}

// Update 更新评价
// @Summary 更新评价，仅作者本人可操作
// @Tags 评价
// @Accept json
// @Produce json
// @Param review_id path int true "评价 ID"
// @Param request body reviewService.UpdateReviewRequest true "请求参数"
// @Success 200 {object} response.Response{data=reviewService.ReviewInfo}
// @Security BearerAuth
// @Router /reviews/{review_id} [put]
func (h *Handler) Update(c *gin.Context) {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	reviewID, ok := handler.ParseParamID(c, "review_id", "评价")
	if !ok {
		return
	}

	var req reviewService.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	info, err := h.reviewService.Update(c.Request.Context(), user.ID, reviewID, &req)
	handler.MustSucceed(c, err, info)
}

// Delete 删除评价
// @Summary 删除评价，仅作者本人可操作
// @Tags 评价
// @Produce json
// @Param review_id path int true "评价 ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /reviews/{review_id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	user, ok := handler.CurrentUser(c)
	if !ok {
		return
	}

	reviewID, ok := handler.ParseParamID(c, "review_id", "评价")
	if !ok {
		return
	}

	err := h.reviewService.Delete(c.Request.Context(), user.ID, reviewID)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}
