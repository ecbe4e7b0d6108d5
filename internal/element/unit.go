package element

import (
	"math"
	"strings"

	"ptable/internal/common/errors"
)

// Unit 温度单位
type Unit string

const (
	Kelvin     Unit = "k"
	Celsius    Unit = "c"
	Fahrenheit Unit = "f"
)

const kelvinOffset = 273.15

// Units 全部温度单位
func Units() []Unit {
	return []Unit{Kelvin, Celsius, Fahrenheit}
}

// ParseUnit 解析温度单位，只接受 k/c/f，不区分大小写
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(s) {
	case "k":
		return Kelvin, nil
	case "c":
		return Celsius, nil
	case "f":
		return Fahrenheit, nil
	default:
		return "", errors.NewInvalidArgumentError("无效的温度单位",
			"unit must be k, c or f, got "+quote(s))
	}
}

// FromKelvin 把开尔文温度换算到该单位，保留10位小数
func (u Unit) FromKelvin(k float64) float64 {
	switch u {
	case Celsius:
		return round10(k - kelvinOffset)
	case Fahrenheit:
		return round10(1.8*(k-kelvinOffset) + 32)
	default:
		return k
	}
}

// ToKelvin 把该单位的温度换算回开尔文
func (u Unit) ToKelvin(v float64) float64 {
	switch u {
	case Celsius:
		return round10(v + kelvinOffset)
	case Fahrenheit:
		return round10((v-32)/1.8 + kelvinOffset)
	default:
		return v
	}
}

// Symbol 单位显示符号
func (u Unit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	default:
		return "K"
	}
}

// Next 循环切换到下一个单位
func (u Unit) Next() Unit {
	switch u {
	case Kelvin:
		return Celsius
	case Celsius:
		return Fahrenheit
	default:
		return Kelvin
	}
}

func (u Unit) String() string { return string(u) }

func round10(v float64) float64 {
	return math.Round(v*1e10) / 1e10
}
