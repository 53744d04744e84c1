package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	LearnerService *service.LearnerService
}

func NewLearnerController(learnerService *service.LearnerService) *LearnerController {
	return &LearnerController{LearnerService: learnerService}
}

// @Summary 已发布课程
// @Tags 学员
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CourseWithTest}
// @Router /learner/courses [get]
func (c *LearnerController) ListPublishedCourses(ctx *gin.Context) {
	courses, err := c.LearnerService.PublishedCourses(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 报名课程
// @Description 重复报名返回已有报名
// @Tags 学员
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Param course_id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.EnrollResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /enroll/{course_id} [post]
func (c *LearnerController) Enroll(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.LearnerService.Enroll(ctx.Request.Context(), util.GetLearnerFromContext(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary 我的课程
// @Tags 学员
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Success 200 {object} util.Response{data=[]model.MyCourse}
// @Router /learner/my-courses [get]
func (c *LearnerController) MyCourses(ctx *gin.Context) {
	courses, err := c.LearnerService.MyCourses(ctx.Request.Context(), util.GetLearnerFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 推进学习进度
// @Description 每次增加 10，达到 100 时标记完成
// @Tags 学员
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Param course_id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.ProgressResult}
// @Failure 404 {object} util.Response
// @Router /learner/progress/{course_id} [put]
func (c *LearnerController) AdvanceProgress(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "course_id")
	if !ok {
		return
	}
	res, err := c.LearnerService.AdvanceProgress(ctx.Request.Context(), util.GetLearnerFromContext(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary 我的徽章
// @Tags 学员
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Success 200 {object} util.Response{data=[]model.Achievement}
// @Router /learner/achievements [get]
func (c *LearnerController) Achievements(ctx *gin.Context) {
	achievements, err := c.LearnerService.Achievements(ctx.Request.Context(), util.GetLearnerFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}
