// Package hotel 提供酒店相关的 HTTP Handler
package hotel

import (
	"github.com/gin-gonic/gin"

	"github.com/otelrez/hotel-reservation-backend/internal/common/handler"
	"github.com/otelrez/hotel-reservation-backend/internal/common/response"
	hotelService "github.com/otelrez/hotel-reservation-backend/internal/service/hotel"
)

// Handler 酒店处理器
type Handler struct {
	hotelService *hotelService.HotelService
}

// NewHandler 创建酒店处理器
func NewHandler(hotelSvc *hotelService.HotelService) *Handler {
	return &Handler{hotelService: hotelSvc}
}

// List 获取酒店列表
// @Summary 获取酒店列表
// @Tags 酒店
// @Produce json
// @Param city query string false "城市，子串匹配"
// @Param is_near_sea query bool false "是否临海"
// @Param has_parking query bool false "是否有停车场"
// @Param max_price query number false "价格上限（含）"
// @Param check_in query string false "入住日期"
// @Param check_out query string false "离店日期"
// @Param page query int false "页码"
// @Param page_size query int false "每页数量"
// @Success 200 {object} response.Response{data=response.ListData}
// @Router /hotels [get]
func (h *Handler) List(c *gin.Context) {
	var req hotelService.HotelListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	list, total, err := h.hotelService.List(c.Request.Context(), &req)
	handler.MustSucceedList(c, err, list, total)
}

// Detail 获取酒店详情
// @Summary 获取酒店详情
// @Tags 酒店
// @Produce json
// @Param id path int true "酒店 ID"
// @Success 200 {object} response.Response{data=hotelService.HotelInfo}
// @Router /hotels/{id} [get]
func (h *Handler) Detail(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	info, err := h.hotelService.GetDetail(c.Request.Context(), id)
	handler.MustSucceed(c, err, info)
}

// Create 创建酒店
// @Summary 创建酒店（管理员）
// @Tags 酒店
// @Accept json
// @Produce json
// @Param request body hotelService.CreateHotelRequest true "请求参数"
// @Success 201 {object} response.Response{data=hotelService.HotelInfo}
// @Security BearerAuth
// @Router /hotels [post]
func (h *Handler) Create(c *gin.Context) {
	var req hotelService.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	info, err := h.hotelService.Create(c.Request.Context(), &req)
	if handler.HandleError(c, err) {
		return
	}

	response.Created(c, info)
}

// Update 更新酒店
// @Summary 更新酒店（管理员）
// @Tags 酒店
// @Accept json
// @Produce json
// @Param id path int true "酒店 ID"
// @Param request body hotelService.UpdateHotelRequest true "请求参数"
// @Success 200 {object} response.Response{data=hotelService.HotelInfo}
// @Security BearerAuth
// @Router /hotels/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	var req hotelService.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误")
		return
	}

	info, err := h.hotelService.Update(c.Request.Context(), id, &req)
	handler.MustSucceed(c, err, info)
}

// Delete 删除酒店
// @Summary 删除酒店（管理员），其下评价一并删除
// @Tags 酒店
// @Produce json
// @Param id path int true "酒店 ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /hotels/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := handler.ParseID(c, "酒店")
	if !ok {
		return
	}

	err := h.hotelService.Delete(c.Request.Context(), id)
	handler.MustSucceedWithMessage(c, err, "删除成功", nil)
}
