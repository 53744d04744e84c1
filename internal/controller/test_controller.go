package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// @Summary 创建课程测试
// @Description 一次提交 5 道单选题，每题 4 个选项
// @Tags 课程测试
// @Accept json
// @Produce json
// @Param id path int true "课程ID"
// @Param body body service.CreateTestsRequest true "题目"
// @Success 201 {object} util.Response{data=service.CreateTestsResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/tests [post]
func (c *TestController) CreateTests(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	var req service.CreateTestsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	res, err := c.TestService.CreateTests(ctx.Request.Context(), courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, res)
}

// @Summary 获取测试题目
// @Description 不包含正确答案
// @Tags 课程测试
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.PublicQuestion}
// @Router /courses/{id}/tests [get]
func (c *TestController) GetQuestions(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	questions, err := c.TestService.Questions(ctx.Request.Context(), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 提交测试
// @Description 每位学员每门课程只能提交一次
// @Tags 课程测试
// @Accept json
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Param id path int true "课程ID"
// @Param body body service.SubmitTestRequest true "答案"
// @Success 200 {object} util.Response{data=model.TestResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /courses/{id}/tests/submit [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	var req service.SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BindError(ctx, err)
		return
	}

	res, err := c.TestService.Submit(ctx.Request.Context(), util.GetLearnerFromContext(ctx), courseID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, res)
}

// @Summary 查询测试结果
// @Tags 课程测试
// @Produce json
// @Param X-Learner-Name header string false "学员名称"
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=service.AttemptStatus}
// @Router /courses/{id}/tests/attempt [get]
func (c *TestController) GetAttempt(ctx *gin.Context) {
	courseID, ok := parseCourseID(ctx, "id")
	if !ok {
		return
	}
	status, err := c.TestService.Attempt(ctx.Request.Context(), util.GetLearnerFromContext(ctx), courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, status)
}
