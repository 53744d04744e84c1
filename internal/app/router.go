package app

import (
	"lms_backend/docs"
	"lms_backend/internal/config"
	"lms_backend/internal/middleware"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/")
	api.Use(middleware.Identity(&cfg.Identity))
	{
		a.registerCourseRoutes(api, c)
		a.registerLearnerRoutes(api, c)

		// 讲师
		api.GET("/instructor/recent-activities", c.instructor.RecentActivities)
	}
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	courses := rg.Group("/courses")
	{
		courses.POST("", c.course.CreateCourse)
		courses.GET("", c.course.ListCourses)
		courses.PUT("/:id/publish", c.course.PublishCourse)
		courses.PUT("/:id/draft", c.course.UnpublishCourse)
		courses.DELETE("/:id", c.course.DeleteCourse)
		courses.PUT("/:id/url", c.course.UpdateCourseURL)
		courses.POST("/:id/image", c.course.UploadCourseImage)

		// 课程测试
		courses.POST("/:id/tests", c.test.CreateTests)
		courses.GET("/:id/tests", c.test.GetQuestions)
		courses.POST("/:id/tests/submit", c.test.SubmitTest)
		courses.GET("/:id/tests/attempt", c.test.GetAttempt)
	}
}

func (a *App) registerLearnerRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/enroll/:course_id", c.learner.Enroll)

	learner := rg.Group("/learner")
	{
		learner.GET("/courses", c.learner.ListPublishedCourses)
		learner.GET("/my-courses", c.learner.MyCourses)
		learner.PUT("/progress/:course_id", c.learner.AdvanceProgress)
		learner.GET("/achievements", c.learner.Achievements)
	}
}
