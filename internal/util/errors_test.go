package util

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidArgument, "测试错误")

	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("期望错误代码为 '%s'，实际为 '%s'", ErrCodeInvalidArgument, err.Code)
	}

	if err.Message != "测试错误" {
		t.Errorf("期望错误消息为 '测试错误'，实际为 '%s'", err.Message)
	}
}

func TestWrapError(t *testing.T) {
	originalErr := errors.New("原始错误")
	wrappedErr := WrapError(ErrCodeExportFailed, "导出失败", originalErr)

	if wrappedErr.Code != ErrCodeExportFailed {
		t.Errorf("期望错误代码为 '%s'，实际为 '%s'", ErrCodeExportFailed, wrappedErr.Code)
	}

	if wrappedErr.Cause != originalErr {
		t.Error("期望包装错误包含原始错误")
	}

	if wrappedErr.Unwrap() != originalErr {
		t.Error("期望Unwrap()返回原始错误")
	}
}

func TestIsErrorCode(t *testing.T) {
	appErr := NewError(ErrCodeConfigInvalid, "配置无效")
	normalErr := errors.New("普通错误")

	if !IsErrorCode(appErr, ErrCodeConfigInvalid) {
		t.Error("期望IsErrorCode返回true")
	}

	if IsErrorCode(normalErr, ErrCodeConfigInvalid) {
		t.Error("期望IsErrorCode对普通错误返回false")
	}

	if IsErrorCode(appErr, ErrCodeElementNotFound) {
		t.Error("期望IsErrorCode对不匹配的错误代码返回false")
	}
}

func TestGetUserFriendlyMessage(t *testing.T) {
	testCases := []struct {
		err      error
		expected string
	}{
		{
			NewError(ErrCodeConfigNotFound, "配置文件未找到"),
			"配置文件未找到，请检查配置文件路径",
		},
		{
			NewToolNotFoundError("missing"),
			"请求的工具不存在，请检查工具名称",
		},
		{
			errors.New("普通错误"),
			"发生未知错误",
		},
	}

	for _, tc := range testCases {
		result := GetUserFriendlyMessage(tc.err)
		if result != tc.expected {
			t.Errorf("期望友好消息为 '%s'，实际为 '%s'", tc.expected, result)
		}
	}
}

func newTestLogger(format string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LogLevelInfo, format, &buf, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l, &buf
}

func TestLoggerTextSortedFields(t *testing.T) {
	l, buf := newTestLogger("text")
	l.Infow("注册表构建完成", map[string]any{"elements": 118, "categories": 10})

	expected := "[2024-01-02 03:04:05] INFO 注册表构建完成 | categories=10 elements=118\n"
	if buf.String() != expected {
		t.Errorf("期望日志为 %q，实际为 %q", expected, buf.String())
	}
}

func TestLoggerJSON(t *testing.T) {
	l, buf := newTestLogger("json")
	l.Warnw("say \"hi\"", map[string]any{"b": 2, "a": "x"})

	expected := `{"timestamp":"2024-01-02 03:04:05","level":"WARN","message":"say \"hi\"","a":"x","b":2}` + "\n"
	if buf.String() != expected {
		t.Errorf("期望日志为 %q，实际为 %q", expected, buf.String())
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	l, buf := newTestLogger("text")
	l.Debug("不应输出")
	if buf.Len() != 0 {
		t.Errorf("期望debug日志被过滤，实际输出 %q", buf.String())
	}
	l.SetLevel(LogLevelDebug)
	l.Debug("应输出")
	if !strings.Contains(buf.String(), "DEBUG 应输出") {
		t.Errorf("期望输出debug日志，实际为 %q", buf.String())
	}
}

func TestLogErrorIncludesCode(t *testing.T) {
	l, buf := newTestLogger("text")
	l.LogError(NewErrorWithDetail(ErrCodeElementNotFound, "元素不存在", "symbol Xx"), "lookup")

	out := buf.String()
	for _, want := range []string{"context=lookup", "error_code=ELEMENT_NOT_FOUND", "details=symbol Xx"} {
		if !strings.Contains(out, want) {
			t.Errorf("期望日志包含 %q，实际为 %q", want, out)
		}
	}
}

func TestInitLoggerFile(t *testing.T) {
	old := DefaultLogger
	defer setDefaultLogger(old)

	if err := InitLogger("info", "text", "file", ""); !IsErrorCode(err, ErrCodeConfigInvalid) {
		t.Errorf("期望缺少文件路径时返回配置错误，实际为 %v", err)
	}

	path := t.TempDir() + "/ptable.log"
	if err := InitLogger("debug", "json", "file", path); err != nil {
		t.Fatalf("初始化文件日志失败: %v", err)
	}
	Debug("写入文件")
	if !FileExists(path) {
		t.Error("期望日志文件已创建")
	}
}
