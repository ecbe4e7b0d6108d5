package tools

import (
	"encoding/json"
	"fmt"
	"math"

	"ptable/internal/common/errors"
	"ptable/internal/util"
)

// 工具参数来自 JSON 解码，数字通常是 float64

// StringArg 读取字符串参数，ok 表示参数存在
func StringArg(args map[string]any, name string) (value string, ok bool, err error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return "", false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return "", false, invalidType(name, "string", raw)
	}
	return s, true, nil
}

// IntArg 读取整数参数，接受没有小数部分的数字
func IntArg(args map[string]any, name string) (value int, ok bool, err error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return 0, false, nil
	}
	n, isInt := asInt(raw)
	if !isInt {
		return 0, false, invalidType(name, "integer", raw)
	}
	return n, true, nil
}

// FloatArg 读取数字参数
func FloatArg(args map[string]any, name string) (value float64, ok bool, err error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		return v, true, nil
	case float32:
		return float64(v), true, nil
	case json.Number:
		f, convErr := v.Float64()
		if convErr != nil {
			return 0, false, invalidType(name, "number", raw)
		}
		return f, true, nil
	}
	if n, isInt := asInt(raw); isInt {
		return float64(n), true, nil
	}
	return 0, false, invalidType(name, "number", raw)
}

// RequireString 读取必填字符串参数
func RequireString(args map[string]any, name string) (string, error) {
	s, ok, err := StringArg(args, name)
	if err != nil {
		return "", err
	}
	if !ok || s == "" {
		return "", missing(name)
	}
	return s, nil
}

// TokenArg 读取元素查找令牌：字符串（名称或符号）或整数（原子序数）
func TokenArg(args map[string]any, name string) (any, error) {
	raw, exists := args[name]
	if !exists || raw == nil {
		return nil, missing(name)
	}
	if s, ok := raw.(string); ok {
		if s == "" {
			return nil, missing(name)
		}
		return s, nil
	}
	if n, ok := asInt(raw); ok {
		return n, nil
	}
	return nil, errors.NewInvalidArgumentTypeError(name, raw)
}

func asInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		// 超出 int 范围的浮点数转换结果未定义，直接拒绝
		if v != math.Trunc(v) || v < math.MinInt || v >= math.MaxInt {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}

func invalidType(name, want string, raw any) error {
	return util.NewInvalidParamError(name, fmt.Sprintf("期望 %s，实际为 %T", want, raw))
}

func missing(name string) error {
	return util.NewInvalidParamError(name, "缺少必填参数")
}
