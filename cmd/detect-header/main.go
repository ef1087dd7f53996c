// detect-header 打印一个 Excel 文件的表头候选行得分，便于人工排查
// 表头定位异常的工作簿。只读不写，复用服务端同一套打分逻辑。
package main

import (
	"fmt"
	"os"
	"strconv"

	"ipmds/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: detect-header <excel_path> [max_rows]")
		os.Exit(1)
	}

	path := os.Args[1]
	maxRows := parser.DefaultMaxScanRows
	if len(os.Args) > 2 {
		if n, err := strconv.Atoi(os.Args[2]); err == nil {
			maxRows = n
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("read file: %v\n", err)
		os.Exit(1)
	}

	grid, err := parser.ReadGrid(content)
	if err != nil {
		fmt.Printf("parse excel: %v\n", err)
		os.Exit(1)
	}

	candidates := parser.TopHeaderCandidates(grid, parser.UnitAliases, maxRows, 5)

	fmt.Println("Top header candidates (hit, text_cells, row_index):")
	for _, cand := range candidates {
		row := grid[cand.Row]
		preview := make([]string, 0, 12)
		for i := 0; i < len(row) && i < 12; i++ {
			preview = append(preview, row[i].String())
		}
		fmt.Printf("- %d, %d, row=%d: %q\n", cand.Hits, cand.TextCells, cand.Row, preview)
	}
}
