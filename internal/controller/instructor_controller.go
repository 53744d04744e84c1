package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	ActivityService *service.ActivityService
}

func NewInstructorController(activityService *service.ActivityService) *InstructorController {
	return &InstructorController{ActivityService: activityService}
}

// @Summary 讲师最近动态
// @Description 学员进度与测试完成事件，按时间倒序最多 5 条
// @Tags 讲师
// @Produce json
// @Param X-Instructor-Name header string false "讲师名称"
// @Success 200 {object} util.Response{data=[]model.RecentActivity}
// @Router /instructor/recent-activities [get]
func (c *InstructorController) RecentActivities(ctx *gin.Context) {
	items, err := c.ActivityService.RecentActivities(ctx.Request.Context(), util.GetInstructorFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}
