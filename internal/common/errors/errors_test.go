package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

type recordingLogger struct {
	err    error
	fields map[string]any
}

func (r *recordingLogger) LogErrorWithFields(err error, context string, extraFields map[string]any) {
	r.err = err
	r.fields = extraFields
}

func TestAppErrorFormat(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, "参数无效")
	if err.Error() != "[INVALID_ARGUMENT] 参数无效" {
		t.Errorf("期望错误文本为 '[INVALID_ARGUMENT] 参数无效'，实际为 '%s'", err.Error())
	}

	err = NewElementNotFoundError("symbol", "Xx")
	if !strings.HasSuffix(err.Error(), "no such element with the symbol: Xx") {
		t.Errorf("期望错误文本包含查找详情，实际为 '%s'", err.Error())
	}
	if err.Stack == "" {
		t.Error("期望错误包含堆栈信息")
	}
}

func TestIsComparesByCode(t *testing.T) {
	a := NewElementNotFoundError("name", "x")
	b := NewElementNotFoundError("symbol", "y")
	if !stderrors.Is(a, b) {
		t.Error("期望相同错误代码的错误被视为同一类")
	}
	if stderrors.Is(a, NewInvalidArgumentError("x", "y")) {
		t.Error("期望不同错误代码的错误不相等")
	}
}

func TestIsErrorCodeWalksChain(t *testing.T) {
	inner := NewDatasetError("record 3 has atomic number 4")
	outer := WrapError(ErrCodeInitializationFailed, "初始化失败", inner)
	wrapped := fmt.Errorf("startup: %w", outer)

	if !IsErrorCode(wrapped, ErrCodeInitializationFailed) {
		t.Error("期望找到外层错误代码")
	}
	if !IsErrorCode(wrapped, ErrCodeDatasetInvalid) {
		t.Error("期望沿错误链找到内层错误代码")
	}
	if IsErrorCode(stderrors.New("普通错误"), ErrCodeDatasetInvalid) {
		t.Error("期望普通错误返回false")
	}
	if GetErrorCode(wrapped) != ErrCodeInitializationFailed {
		t.Errorf("期望错误代码为 '%s'，实际为 '%s'", ErrCodeInitializationFailed, GetErrorCode(wrapped))
	}
	if GetErrorCode(stderrors.New("x")) != ErrCodeInternalErr {
		t.Error("期望普通错误的代码为 INTERNAL_ERROR")
	}
	if GetErrorDetails(outer) != inner.Error() {
		t.Errorf("期望详情为原始错误文本，实际为 '%s'", GetErrorDetails(outer))
	}
}

func TestGetUserFriendlyMessage(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{NewElementNotFoundError("name", "x"), "未找到对应的元素，请检查名称、符号或原子序数"},
		{NewError(ErrCodeConfigNotFound, "配置文件未找到"), "配置文件未找到，请检查配置文件路径"},
		{NewError("CUSTOM", "自定义消息"), "自定义消息"},
		{stderrors.New("普通错误"), "发生未知错误"},
		{nil, ""},
	}

	for _, tc := range testCases {
		if result := GetUserFriendlyMessage(tc.err); result != tc.expected {
			t.Errorf("期望友好消息为 '%s'，实际为 '%s'", tc.expected, result)
		}
	}
}

func TestHandleErrorLogs(t *testing.T) {
	logger := &recordingLogger{}
	handler := &DefaultErrorHandler{}
	handler.SetLogger(logger)

	handler.HandleError(stderrors.New("boom"))
	if !IsErrorCode(logger.err, ErrCodeInternalErr) {
		t.Errorf("期望普通错误被包装为 INTERNAL_ERROR，实际为 %v", logger.err)
	}
	if logger.fields["user_message"] != "系统错误，请联系技术支持" {
		t.Errorf("期望记录友好消息，实际为 %v", logger.fields["user_message"])
	}

	logger.err = nil
	handler.HandleError(nil)
	if logger.err != nil {
		t.Error("期望nil错误不被记录")
	}
}
