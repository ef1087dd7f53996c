package parser

import (
	"fmt"
	"strings"

	"ipmds/internal/model"
)

// Table 规范化后的数据表：列名 + 行数据，列序即列名序
type Table struct {
	Columns []string
	Rows    [][]model.Cell
}

// ColumnIndex 返回列名对应的列下标，未找到返回 -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// SchemaMismatchError 必需字段在重命名后仍缺失。
// 携带缺失字段与实际找到的列，便于排查表头问题。
type SchemaMismatchError struct {
	Missing []string
	Found   []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("missing columns in excel: [%s], available: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// ProjectSchema 定位表头、按别名重命名、校验必需字段并投影。
// 返回只含 required 列（按 required 顺序）的表；缺列返回 SchemaMismatchError。
func ProjectSchema(grid Grid, aliases AliasMap, required []string, maxScan int) (*Table, error) {
	if len(grid) == 0 {
		return nil, &SchemaMismatchError{Missing: append([]string(nil), required...)}
	}

	headerRow := LocateHeaderRow(grid, aliases, maxScan)

	header := grid[headerRow]
	renameMap := BuildRenameMap(header, aliases)

	columns := make([]string, len(header))
	for i, c := range header {
		label := strings.TrimSpace(c.String())
		if canonical, ok := renameMap[label]; ok {
			columns[i] = canonical
		} else {
			columns[i] = label
		}
	}

	colIndex := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, exists := colIndex[name]; !exists {
			colIndex[name] = i
		}
	}

	var missing []string
	for _, field := range required {
		if _, ok := colIndex[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Missing: missing, Found: columns}
	}

	body := grid[headerRow+1:]
	rows := make([][]model.Cell, 0, len(body))
	for _, src := range body {
		row := make([]model.Cell, len(required))
		for i, field := range required {
			idx := colIndex[field]
			if idx < len(src) {
				row[i] = src[idx]
			} else {
				row[i] = model.NullCell()
			}
		}
		rows = append(rows, row)
	}

	return &Table{Columns: append([]string(nil), required...), Rows: rows}, nil
}

// StringifyColumn 把指定列整列转成去首尾空格的文本单元格（连接键用）
func StringifyColumn(t *Table, field string) {
	idx := t.ColumnIndex(field)
	if idx < 0 {
		return
	}
	for _, row := range t.Rows {
		row[idx] = model.StringCell(strings.TrimSpace(row[idx].String()))
	}
}
