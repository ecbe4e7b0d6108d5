package util

import (
	"fmt"

	"ptable/internal/common/errors"
)

// 错误代码常量 - 使用通用错误处理系统中的错误代码
const (
	ErrCodeInternalErr          = errors.ErrCodeInternalErr          // 内部错误
	ErrCodeInitializationFailed = errors.ErrCodeInitializationFailed // 初始化失败
	ErrCodeElementNotFound      = errors.ErrCodeElementNotFound      // 元素不存在
	ErrCodeInvalidArgumentType  = errors.ErrCodeInvalidArgumentType  // 参数类型无效
	ErrCodeInvalidArgument      = errors.ErrCodeInvalidArgument      // 参数取值无效
	ErrCodeCompareTypeMismatch  = errors.ErrCodeCompareTypeMismatch  // 比较类型不匹配
	ErrCodeDatasetInvalid       = errors.ErrCodeDatasetInvalid       // 数据集无效
	ErrCodeConfigNotFound       = errors.ErrCodeConfigNotFound       // 配置文件未找到
	ErrCodeConfigInvalid        = errors.ErrCodeConfigInvalid        // 配置文件无效
	ErrCodeConfigLoadFailed     = errors.ErrCodeConfigLoadFailed     // 配置加载失败
	ErrCodeConfigParseFailed    = errors.ErrCodeConfigParseFailed    // 配置解析失败
	ErrCodeExportFailed         = errors.ErrCodeExportFailed         // 导出失败
	ErrCodeToolNotFound         = errors.ErrCodeToolNotFound         // 工具未找到
	ErrCodeToolExecutionFailed  = errors.ErrCodeToolExecutionFailed  // 工具执行失败
	ErrCodeMCPServeFailed       = errors.ErrCodeMCPServeFailed       // MCP服务运行失败
)

// AppError 应用错误结构 - 使用通用错误处理系统中的AppError
type AppError = errors.AppError

// 创建新的应用错误
func NewError(code, message string) *AppError {
	return errors.NewError(code, message)
}

// 创建带详情的应用错误
func NewErrorWithDetail(code, message, details string) *AppError {
	return errors.NewErrorWithDetails(code, message, details)
}

// 包装现有错误
func WrapError(code, message string, cause error) *AppError {
	return errors.WrapError(code, message, cause)
}

// 检查错误链中是否存在指定代码
func IsErrorCode(err error, code string) bool {
	return errors.IsErrorCode(err, code)
}

// 获取错误代码
func GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return errors.GetUserFriendlyMessage(err)
}

// 工具特定的错误创建函数

// NewToolError 创建工具错误
func NewToolError(message string) *AppError {
	return errors.NewToolError(message)
}

// NewToolErrorWithDetails 创建带详情的工具错误
func NewToolErrorWithDetails(message, details string) *AppError {
	return errors.NewToolErrorWithDetails(message, details)
}

// WrapToolError 包装现有错误为工具错误
func WrapToolError(message string, cause error) *AppError {
	return errors.WrapToolError(message, cause)
}

// NewToolNotFoundError 创建工具未找到错误
func NewToolNotFoundError(toolName string) *AppError {
	return errors.NewErrorWithDetails(errors.ErrCodeToolNotFound, "工具未找到",
		fmt.Sprintf("工具名称: %s", toolName))
}

// NewToolExecutionError 创建工具执行错误
func NewToolExecutionError(toolName string, cause error) *AppError {
	return errors.WrapErrorWithDetails(errors.ErrCodeToolExecutionFailed,
		fmt.Sprintf("工具 %s 执行失败", toolName), cause,
		fmt.Sprintf("工具名称: %s", toolName))
}

// NewInvalidParamError 创建工具参数无效错误
func NewInvalidParamError(param, details string) *AppError {
	return errors.NewInvalidArgumentError(fmt.Sprintf("参数 %s 无效", param), details)
}
