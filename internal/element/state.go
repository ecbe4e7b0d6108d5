package element

import (
	"strings"

	"ptable/internal/common/errors"
)

// State 室温物态
type State string

const (
	Solid  State = "solid"
	Liquid State = "liquid"
	Gas    State = "gas"
)

// States 全部物态
func States() []State {
	return []State{Solid, Liquid, Gas}
}

// ParseState 解析物态，接受全称或首字母，不区分大小写
func ParseState(s string) (State, error) {
	switch strings.ToLower(s) {
	case "solid", "s":
		return Solid, nil
	case "liquid", "l":
		return Liquid, nil
	case "gas", "g":
		return Gas, nil
	default:
		return "", errors.NewInvalidArgumentError("无效的物态",
			"state must be solid, liquid or gas (s, l, g), got "+quote(s))
	}
}

func (s State) String() string { return string(s) }

func (s State) valid() bool {
	return s == Solid || s == Liquid || s == Gas
}

func quote(s string) string {
	return "'" + s + "'"
}
