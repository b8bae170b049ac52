package service

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BadRequest          = 400
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid = errors.New("参数错误")
	ErrKolNotFound  = errors.New("KOL不存在")
	UnExpectedError = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid: BadRequest,
	ErrKolNotFound:  NotFound,
	UnExpectedError: InternalServerError,
}

// ValidationError 输入不满足字段或枚举约束
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NewEnumError 构造枚举校验错误，带上字段名和允许的取值
func NewEnumError(field string, values []string) error {
	return &ValidationError{Msg: fmt.Sprintf("字段 [%s] 的值无效，允许的值: %s", field, strings.Join(values, ", "))}
}

// ConflictError 唯一性约束冲突
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}
