package api

import (
	"log"

	"budgetbook/config"
	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
func SafeErrorMessage(err error, fallback string) string {
	return config.SafeErrorMessage(err, fallback)
}

// respondError 按业务错误分类返回对应的状态码，其余错误按 500 处理
func respondError(c *gin.Context, err error, fallback string) {
	switch service.KindOf(err) {
	case service.KindValidation:
		BadRequest(c, err.Error())
	case service.KindNotFound:
		NotFound(c, err.Error())
	case service.KindPrecondition:
		UnprocessableEntity(c, err.Error())
	default:
		log.Printf("[%s] %s %s: %v", middleware.GetRequestID(c), c.Request.Method, c.Request.URL.Path, err)
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}
