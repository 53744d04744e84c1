package controller

import (
	"errors"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var notFoundErrors = []error{
	util.ErrCourseNotFound,
	util.ErrEnrollmentNotFound,
	util.ErrTestIncomplete,
}

var badRequestErrors = []error{
	util.ErrCourseNotPublished,
	util.ErrInvalidStatus,
	util.ErrInvalidURL,
	util.ErrInvalidImage,
	util.ErrTestExists,
	util.ErrAlreadyAttempted,
}

// respondError 业务错误映射为 400/404，其余记录日志后返回 500
func respondError(ctx *gin.Context, err error) {
	var ve *util.ValidationError
	if errors.As(err, &ve) {
		util.BadRequest(ctx, ve.Message)
		return
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			util.NotFound(ctx, target.Error())
			return
		}
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			util.BadRequest(ctx, target.Error())
			return
		}
	}
	util.LogInternalError(ctx, err)
}

func parseCourseID(ctx *gin.Context, param string) (uint, bool) {
	id, ok := util.ParseID(ctx.Param(param))
	if !ok {
		util.BadRequest(ctx, "invalid course id")
		return 0, false
	}
	return id, true
}
