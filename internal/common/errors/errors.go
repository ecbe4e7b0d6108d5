package errors

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// 错误代码常量
const (
	// 系统级错误
	ErrCodeInternalErr          = "INTERNAL_ERROR"        // 内部错误
	ErrCodeInitializationFailed = "INITIALIZATION_FAILED" // 初始化失败

	// 元素查询错误
	ErrCodeElementNotFound     = "ELEMENT_NOT_FOUND"     // 元素不存在
	ErrCodeInvalidArgumentType = "INVALID_ARGUMENT_TYPE" // 查找令牌类型无效
	ErrCodeInvalidArgument     = "INVALID_ARGUMENT"      // 参数取值无效（单位、状态、步长等）
	ErrCodeCompareTypeMismatch = "COMPARE_TYPE_MISMATCH" // 与非元素值做大小比较
	ErrCodeDatasetInvalid      = "DATASET_INVALID"       // 内置数据集损坏

	// 配置错误
	ErrCodeConfigNotFound    = "CONFIG_NOT_FOUND"    // 配置文件未找到
	ErrCodeConfigInvalid     = "CONFIG_INVALID"      // 配置文件无效
	ErrCodeConfigLoadFailed  = "CONFIG_LOAD_FAILED"  // 配置加载失败
	ErrCodeConfigParseFailed = "CONFIG_PARSE_FAILED" // 配置解析失败

	// 导出错误
	ErrCodeExportFailed = "EXPORT_FAILED" // 导出失败

	// 工具错误
	ErrCodeToolNotFound        = "TOOL_NOT_FOUND"        // 工具未找到
	ErrCodeToolExecutionFailed = "TOOL_EXECUTION_FAILED" // 工具执行失败

	// MCP错误
	ErrCodeMCPServeFailed = "MCP_SERVE_FAILED" // MCP服务运行失败
)

// AppError 应用错误结构
type AppError struct {
	Code    string `json:"code"`              // 错误代码
	Message string `json:"message"`           // 错误消息
	Details string `json:"details,omitempty"` // 错误详情
	Cause   error  `json:"-"`                 // 原始错误
	Stack   string `json:"stack,omitempty"`   // 错误堆栈
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回原始错误
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is 实现错误比较接口，错误代码相同即视为同一类错误
func (e *AppError) Is(target error) bool {
	if other, ok := target.(*AppError); ok {
		return e.Code == other.Code
	}
	return false
}

// WithDetails 添加错误详情
func (e *AppError) WithDetails(details string) *AppError {
	e.Details = details
	return e
}

// WithStack 添加堆栈信息
func (e *AppError) WithStack() *AppError {
	e.Stack = getStackTrace(3) // 跳过3层调用栈
	return e
}

// getStackTrace 获取调用堆栈
func getStackTrace(skip int) string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(skip, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var stack strings.Builder
	for {
		frame, more := frames.Next()
		// 跳过runtime相关的调用栈
		if !strings.Contains(frame.File, "runtime/") {
			stack.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))
		}
		if !more {
			break
		}
	}
	return stack.String()
}

// asAppError 沿错误链查找第一个 AppError
func asAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorCode 检查错误链中是否存在指定代码的错误
func IsErrorCode(err error, code string) bool {
	for err != nil {
		appErr, ok := asAppError(err)
		if !ok {
			return false
		}
		if appErr.Code == code {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// GetErrorCode 获取错误代码
func GetErrorCode(err error) string {
	if appErr, ok := asAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternalErr
}

// GetErrorDetails 获取错误详情
func GetErrorDetails(err error) string {
	if appErr, ok := asAppError(err); ok {
		return appErr.Details
	}
	return ""
}
