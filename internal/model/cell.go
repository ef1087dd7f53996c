package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// CellKind 单元格取值类别
type CellKind int

const (
	CellNull   CellKind = iota // 空单元格
	CellString                 // 文本
	CellNumber                 // 数值
)

// Cell 电子表格单元格值（null / 文本 / 数值 三选一）。
// 所有别名匹配与差异比对统一走 String() 的字符串形态。
type Cell struct {
	Kind CellKind
	Raw  string  // 原始字符串形态（数值同样保留录入形态）
	Num  float64 // Kind == CellNumber 时有效
}

// NullCell 空单元格
func NullCell() Cell {
	return Cell{Kind: CellNull}
}

// StringCell 文本单元格
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Raw: s}
}

// NumberCell 数值单元格，raw 保留录入形态
func NumberCell(raw string, v float64) Cell {
	return Cell{Kind: CellNumber, Raw: raw, Num: v}
}

// ParseCell 把原始单元格文本归类为三类取值之一
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return NullCell()
	}
	// "nan"/"inf" 等非有限数字面量按文本处理，不归入数值
	if v, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return NumberCell(trimmed, v)
	}
	return StringCell(raw)
}

// IsNull 是否为空值
func (c Cell) IsNull() bool {
	return c.Kind == CellNull
}

// String 单元格的字符串形态，空值为 ""
func (c Cell) String() string {
	if c.Kind == CellNull {
		return ""
	}
	return c.Raw
}

// Float 数值形态，非数值返回 0
func (c Cell) Float() float64 {
	if c.Kind == CellNumber {
		return c.Num
	}
	return 0
}

// MarshalJSON 序列化为 null / 字符串 / 原生数值，保证传输安全。
// ParseFloat 比 JSON 数字语法宽松（接受 "+88"、".5"、"1_0" 等），
// 因此 Raw 仅在本身就是合法 JSON 数字时原样输出；非有限数退化为 null。
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case CellNull:
		return []byte("null"), nil
	case CellNumber:
		if math.IsNaN(c.Num) || math.IsInf(c.Num, 0) {
			return []byte("null"), nil
		}
		if json.Valid([]byte(c.Raw)) {
			return []byte(c.Raw), nil
		}
		return []byte(strconv.FormatFloat(c.Num, 'f', -1, 64)), nil
	default:
		return json.Marshal(c.Raw)
	}
}

// UnmarshalJSON 从 null / 字符串 / 数值还原
func (c *Cell) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*c = NullCell()
		return nil
	}
	if strings.HasPrefix(s, "\"") {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*c = StringCell(str)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*c = NumberCell(s, v)
	return nil
}
