package errors

import "fmt"

// NewError 创建新的错误
func NewError(code, message string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
	}
	return err.WithStack()
}

// NewErrorWithDetails 创建带详情的错误
func NewErrorWithDetails(code, message, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
	return err.WithStack()
}

// WrapError 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	details := ""
	if cause != nil {
		details = cause.Error()
	}

	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// WrapErrorWithDetails 包装现有错误并添加详情
func WrapErrorWithDetails(code, message string, cause error, details string) *AppError {
	err := &AppError{
		Code:    code,
		Message: message,
		Details: details,
		Cause:   cause,
	}
	return err.WithStack()
}

// 预定义错误创建函数

// NewElementNotFoundError 创建元素不存在错误，kind 为查找方式（name、symbol、atomic number 等）
func NewElementNotFoundError(kind string, value any) *AppError {
	return NewErrorWithDetails(ErrCodeElementNotFound, "元素不存在",
		fmt.Sprintf("no such element with the %s: %v", kind, value))
}

// NewInvalidArgumentError 创建参数取值无效错误
func NewInvalidArgumentError(message, details string) *AppError {
	return NewErrorWithDetails(ErrCodeInvalidArgument, message, details)
}

// NewInvalidArgumentTypeError 创建参数类型无效错误
func NewInvalidArgumentTypeError(param string, value any) *AppError {
	return NewErrorWithDetails(ErrCodeInvalidArgumentType, "参数类型无效",
		fmt.Sprintf("parameter '%s' expects a string (name/symbol) or an integer (atomic number), not %T", param, value))
}

// NewCompareTypeError 创建比较类型不匹配错误
func NewCompareTypeError(value any) *AppError {
	return NewErrorWithDetails(ErrCodeCompareTypeMismatch, "无法比较",
		fmt.Sprintf("cannot compare %T with Element", value))
}

// NewDatasetError 创建数据集无效错误
func NewDatasetError(details string) *AppError {
	return NewErrorWithDetails(ErrCodeDatasetInvalid, "元素数据集无效", details)
}

// WrapDatasetError 包装数据集解析错误
func WrapDatasetError(message string, cause error) *AppError {
	return WrapError(ErrCodeDatasetInvalid, message, cause)
}

// 配置错误
func NewConfigError(message string) *AppError {
	return NewError(ErrCodeConfigInvalid, message)
}

func NewConfigErrorWithDetails(message, details string) *AppError {
	return NewErrorWithDetails(ErrCodeConfigInvalid, message, details)
}

func WrapConfigError(message string, cause error) *AppError {
	return WrapError(ErrCodeConfigInvalid, message, cause)
}

// 导出错误
func NewExportError(message string) *AppError {
	return NewError(ErrCodeExportFailed, message)
}

func WrapExportError(message string, cause error) *AppError {
	return WrapError(ErrCodeExportFailed, message, cause)
}

// 工具错误
func NewToolError(message string) *AppError {
	return NewError(ErrCodeToolExecutionFailed, message)
}

func NewToolErrorWithDetails(message, details string) *AppError {
	return NewErrorWithDetails(ErrCodeToolExecutionFailed, message, details)
}

func WrapToolError(message string, cause error) *AppError {
	return WrapError(ErrCodeToolExecutionFailed, message, cause)
}

// MCP错误
func WrapMCPError(message string, cause error) *AppError {
	return WrapError(ErrCodeMCPServeFailed, message, cause)
}
