package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

// @Summary 创建课程
// @Description 以当前讲师身份创建草稿课程
// @Tags 课程管理
// @Accept json
// @Produce json
// @Param X-Instructor-Name header string false "讲师名称"
// @Param course body service.CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	course, err := c.CourseService.Create(ctx.Request.Context(), util.GetInstructorFromContext(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary 课程列表
// @Tags 课程管理
// @Produce json
// @Param status query string false "draft 或 published"
// @Success 200 {object} util.Response{data=[]model.CourseWithTest}
// @Failure 400 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.List(ctx.Request.Context(), ctx.Query("status"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 发布课程
// @Tags 课程管理
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id}/publish [put]
func (c *CourseController) PublishCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	course, err := c.CourseService.Publish(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 撤回为草稿
// @Tags 课程管理
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /courses/{id}/draft [put]
func (c *CourseController) UnpublishCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	course, err := c.CourseService.Unpublish(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 删除课程
// @Description 同时删除该课程的报名、题目和测试记录
// @Tags 课程管理
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.CourseService.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}

// @Summary 更新课程学习链接
// @Tags 课程管理
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param body body service.UpdateCourseURLRequest true "课程链接"
// @Success 200 {object} util.Response{data=service.CourseURLResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/url [put]
func (c *CourseController) UpdateCourseURL(ctx *gin.Context) {
	id, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	var req service.UpdateCourseURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	res, err := c.CourseService.UpdateURL(ctx.Request.Context(), id, req.CourseURL)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary 上传课程封面
// @Tags 课程管理
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "课程ID"
// @Param file formData file true "图片文件"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/image [post]
func (c *CourseController) UploadCourseImage(ctx *gin.Context) {
	id, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	course, err := c.CourseService.UploadImage(ctx.Request.Context(), id, file, header.Size)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}
