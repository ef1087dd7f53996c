package parser

import (
	"strings"

	"ipmds/internal/model"
)

// BuildRenameMap 构建观测表头 → 规范字段的重命名表。
// 先按规范化形态为表头建索引（重复标签后者覆盖前者），再按字段顺序
// 取别名列表中第一个命中的别名。若两个字段的别名归一后撞到同一个
// 观测标签，后处理的字段覆盖先处理的（兼容既有行为，不告警）。
func BuildRenameMap(headerRow []model.Cell, aliases AliasMap) map[string]string {
	normalizedToOriginal := make(map[string]string, len(headerRow))
	for _, c := range headerRow {
		label := strings.TrimSpace(c.String())
		normalizedToOriginal[NormalizeLabel(label)] = label
	}

	renameMap := make(map[string]string)
	for _, fa := range aliases {
		for _, alias := range fa.Aliases {
			key := NormalizeLabel(alias)
			if original, ok := normalizedToOriginal[key]; ok {
				renameMap[original] = fa.Field
				break
			}
		}
	}

	return renameMap
}
