package parser

import (
	"strings"
)

// NormalizeLabel 规范化表头标签，作为别名匹配的唯一比较键。
// 依次：去首尾空格、转小写、去内部空白、全角括号转半角、㎡ 转 "m2"。
// 纯函数且幂等。
func NormalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\t", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "（", "(")
	s = strings.ReplaceAll(s, "）", ")")
	s = strings.ReplaceAll(s, "㎡", "m2")
	return s
}

// AliasMatches 别名与观测标签是否命中（两者均已规范化）。
// 规则：完全相等，或别名是观测标签的子串（只允许这个方向的包含）。
func AliasMatches(aliasNorm, observedNorm string) bool {
	if observedNorm == "" {
		return false
	}
	return aliasNorm == observedNorm || strings.Contains(observedNorm, aliasNorm)
}
