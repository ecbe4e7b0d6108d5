package errors

// ErrorLogger 错误处理器使用的日志接口，由 util.Logger 实现
type ErrorLogger interface {
	LogErrorWithFields(err error, context string, extraFields map[string]any)
}

// DefaultErrorHandler 默认错误处理器实现
type DefaultErrorHandler struct {
	logger ErrorLogger
}

// SetLogger 设置错误日志输出
func (h *DefaultErrorHandler) SetLogger(logger ErrorLogger) {
	h.logger = logger
}

// HandleError 处理错误
func (h *DefaultErrorHandler) HandleError(err error) {
	if err == nil {
		return
	}

	appErr, ok := asAppError(err)
	if !ok {
		// 如果不是AppError，包装一下
		appErr = WrapError(ErrCodeInternalErr, "未知错误", err)
	}

	if h.logger == nil {
		return
	}
	h.logger.LogErrorWithFields(appErr, "error_handler", map[string]any{
		"user_message": h.GetUserFriendlyMessage(appErr),
	})
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func (h *DefaultErrorHandler) GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	appErr, ok := asAppError(err)
	if !ok {
		return "发生未知错误"
	}

	switch appErr.Code {
	// 系统错误
	case ErrCodeInternalErr:
		return "系统错误，请联系技术支持"
	case ErrCodeInitializationFailed:
		return "应用程序初始化失败，请检查配置"

	// 元素查询错误
	case ErrCodeElementNotFound:
		return "未找到对应的元素，请检查名称、符号或原子序数"
	case ErrCodeInvalidArgumentType:
		return "查找参数类型无效，请使用名称、符号或原子序数"
	case ErrCodeInvalidArgument:
		return "参数无效，请检查输入"
	case ErrCodeCompareTypeMismatch:
		return "元素只能与元素比较大小"
	case ErrCodeDatasetInvalid:
		return "内置元素数据集损坏，请重新构建程序"

	// 配置错误
	case ErrCodeConfigNotFound:
		return "配置文件未找到，请检查配置文件路径"
	case ErrCodeConfigInvalid, ErrCodeConfigLoadFailed, ErrCodeConfigParseFailed:
		return "配置文件错误，请检查配置文件"

	// 导出错误
	case ErrCodeExportFailed:
		return "导出失败，请检查输出路径和格式"

	// 工具错误
	case ErrCodeToolNotFound:
		return "请求的工具不存在，请检查工具名称"
	case ErrCodeToolExecutionFailed:
		return "工具执行失败，请检查参数和输入"

	// MCP错误
	case ErrCodeMCPServeFailed:
		return "MCP服务运行失败，请检查标准输入输出连接"

	default:
		return appErr.Message
	}
}

// 默认错误处理器实例
var DefaultHandler = &DefaultErrorHandler{}

// HandleError 处理错误
func HandleError(err error) {
	DefaultHandler.HandleError(err)
}

// GetUserFriendlyMessage 获取用户友好的错误消息
func GetUserFriendlyMessage(err error) string {
	return DefaultHandler.GetUserFriendlyMessage(err)
}
