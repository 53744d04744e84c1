package middleware

import (
	"lms_backend/internal/config"
	"lms_backend/internal/util"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity 从请求头读取学员和讲师身份，缺省时使用配置中的默认身份
func Identity(cfg *config.IdentityConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		learner := strings.TrimSpace(c.GetHeader(util.LearnerHeader))
		if learner == "" {
			learner = cfg.Learner
		}
		instructor := strings.TrimSpace(c.GetHeader(util.InstructorHeader))
		if instructor == "" {
			instructor = cfg.Instructor
		}

		c.Set(util.LearnerKey, learner)
		c.Set(util.InstructorKey, instructor)
		c.Next()
	}
}
