package parser

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"ipmds/internal/model"
)

// Grid 原始表格：行优先的单元格矩阵，不假设表头位置。
// 解析完成后只读，归属于发起解析的那次请求。
type Grid [][]model.Cell

// ReadGrid 解析上传的 Excel 字节流，取第一个工作表构建 Grid。
// 行宽对齐到最宽一行，缺失单元格补空值。
func ReadGrid(content []byte) (Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Grid{}, nil
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	grid := make(Grid, 0, len(rows))
	for _, row := range rows {
		cells := make([]model.Cell, width)
		for i := range cells {
			if i < len(row) {
				cells[i] = model.ParseCell(row[i])
			} else {
				cells[i] = model.NullCell()
			}
		}
		grid = append(grid, cells)
	}

	return grid, nil
}
