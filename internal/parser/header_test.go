package parser

import (
	"testing"

	"ipmds/internal/model"
)

func cellRow(values ...string) []model.Cell {
	row := make([]model.Cell, 0, len(values))
	for _, v := range values {
		row = append(row, model.ParseCell(v))
	}
	return row
}

func TestLocateHeaderRow_AnyPosition(t *testing.T) {
	t.Parallel()

	header := cellRow("房号", "状态", "面积", "买受人")

	for _, k := range []int{0, 3, 15, 49} {
		grid := make(Grid, 0, k+2)
		for i := 0; i < k; i++ {
			grid = append(grid, cellRow("", "1", "2"))
		}
		grid = append(grid, header)
		grid = append(grid, cellRow("101", "已售", "88", "张三"))

		if got := LocateHeaderRow(grid, UnitAliases, DefaultMaxScanRows); got != k {
			t.Fatalf("header at row %d but locator returned %d", k, got)
		}
	}
}

func TestLocateHeaderRow_TieBreakByTextCells(t *testing.T) {
	t.Parallel()

	// 两行命中数相同，文本单元格多的那行胜出
	grid := Grid{
		cellRow("房号", "", ""),
		cellRow("房号", "备注", "说明"),
	}
	if got := LocateHeaderRow(grid, UnitAliases, DefaultMaxScanRows); got != 1 {
		t.Fatalf("expected row 1 to win on text cells, got %d", got)
	}
}

func TestLocateHeaderRow_TieKeepsEarlierRow(t *testing.T) {
	t.Parallel()

	// 命中数与文本单元格数都相同 → 保留先扫描到的行
	grid := Grid{
		cellRow("房号", "状态"),
		cellRow("房号", "状态"),
	}
	if got := LocateHeaderRow(grid, UnitAliases, DefaultMaxScanRows); got != 0 {
		t.Fatalf("expected earlier row on full tie, got %d", got)
	}
}

func TestLocateHeaderRow_EmptyGridDefaultsToZero(t *testing.T) {
	t.Parallel()

	if got := LocateHeaderRow(Grid{}, UnitAliases, DefaultMaxScanRows); got != 0 {
		t.Fatalf("empty grid should default to row 0, got %d", got)
	}
}

func TestLocateHeaderRow_RespectsMaxScan(t *testing.T) {
	t.Parallel()

	grid := Grid{
		cellRow("说明", "某个标题"),
		cellRow("备注行", ""),
		cellRow("房号", "状态", "面积", "买受人"),
	}
	// 限制只扫前两行，真正的表头在第 2 行，扫不到
	if got := LocateHeaderRow(grid, UnitAliases, 2); got == 2 {
		t.Fatalf("locator scanned beyond max_scan_rows")
	}
}

func TestScoreRow_OneHitPerField(t *testing.T) {
	t.Parallel()

	// 同一字段的多个别名同时出现，也只计一次命中
	hits, _ := ScoreRow(cellRow("房号", "房间号", "单元号"), UnitAliases)
	if hits != 1 {
		t.Fatalf("expected 1 hit for duplicated unit_no aliases, got %d", hits)
	}
}

func TestTopHeaderCandidates_Order(t *testing.T) {
	t.Parallel()

	grid := Grid{
		cellRow("备注", ""),
		cellRow("房号", "状态", "面积", "买受人"),
		cellRow("房号", "状态"),
	}
	candidates := TopHeaderCandidates(grid, UnitAliases, DefaultMaxScanRows, 5)
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	if candidates[0].Row != 1 {
		t.Fatalf("best candidate should be row 1, got %d", candidates[0].Row)
	}
	if candidates[0].Hits != 4 {
		t.Fatalf("best candidate should hit all 4 fields, got %d", candidates[0].Hits)
	}
}
