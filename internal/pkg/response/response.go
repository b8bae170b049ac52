package response

import (
	"Kolhub/internal/api/dto"
	"Kolhub/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
	})
}

// Created 创建成功返回封装
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, dto.Response{
		Code:    http.StatusCreated,
		Message: "success",
		Data:    data,
	})
}

// NoContent 删除成功，无响应体
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// Fail 失败返回封装
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, dto.Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误，按错误类型映射 HTTP 状态码
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusUnprocessableEntity, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "Json错误")
		return
	}

	var validationError *service.ValidationError
	if errors.As(err, &validationError) {
		Fail(c, http.StatusUnprocessableEntity, validationError.Error())
		return
	}

	var conflictError *service.ConflictError
	if errors.As(err, &conflictError) {
		Fail(c, http.StatusBadRequest, conflictError.Error())
		return
	}

	code, ok := service.ErrorMap[err]
	if !ok {
		code = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "Unexpected error", "err", err)
		Fail(c, code, service.UnExpectedError.Error())
		return
	}
	Fail(c, code, err.Error())
}
