package util

import "github.com/gin-gonic/gin"

func GetLearnerFromContext(c *gin.Context) string {
	return c.GetString(LearnerKey)
}

func GetInstructorFromContext(c *gin.Context) string {
	return c.GetString(InstructorKey)
}
