package parser

import (
	"sort"

	"ipmds/internal/model"
)

// DefaultMaxScanRows 表头定位默认扫描行数
const DefaultMaxScanRows = 50

// HeaderCandidate 表头候选行得分
type HeaderCandidate struct {
	Hits      int `json:"hits"`      // 命中的规范字段数
	TextCells int `json:"textCells"` // 非空文本单元格数
	Row       int `json:"row"`       // 行号（0 起）
}

// ScoreRow 给单行打分：命中多少个规范字段（每个字段最多计一次），
// 以及该行有多少个非空文本单元格。
func ScoreRow(row []model.Cell, aliases AliasMap) (hits, textCells int) {
	normValues := make([]string, 0, len(row))
	for _, c := range row {
		if c.IsNull() {
			continue
		}
		normValues = append(normValues, NormalizeLabel(c.String()))
	}

	for _, fa := range aliases {
		for _, alias := range fa.Aliases {
			aliasNorm := NormalizeLabel(alias)
			matched := false
			for _, v := range normValues {
				if AliasMatches(aliasNorm, v) {
					matched = true
					break
				}
			}
			if matched {
				hits++
				break
			}
		}
	}

	for _, c := range row {
		if c.Kind == model.CellString && c.String() != "" {
			textCells++
		}
	}

	return hits, textCells
}

// LocateHeaderRow 在前 maxScan 行中定位表头行。
// 排序：命中数降序，其次文本单元格数降序；打平保留先扫描到的行。
// 空表格退化为第 0 行，不报错。
func LocateHeaderRow(grid Grid, aliases AliasMap, maxScan int) int {
	if maxScan <= 0 {
		maxScan = DefaultMaxScanRows
	}

	bestRow := 0
	bestHits := -1
	bestText := -1

	limit := maxScan
	if len(grid) < limit {
		limit = len(grid)
	}

	for i := 0; i < limit; i++ {
		hits, textCells := ScoreRow(grid[i], aliases)
		if hits > bestHits || (hits == bestHits && textCells > bestText) {
			bestHits = hits
			bestText = textCells
			bestRow = i
		}
	}

	return bestRow
}

// TopHeaderCandidates 按得分排序返回前 n 个候选行（诊断用）
func TopHeaderCandidates(grid Grid, aliases AliasMap, maxScan, n int) []HeaderCandidate {
	if maxScan <= 0 {
		maxScan = DefaultMaxScanRows
	}

	limit := maxScan
	if len(grid) < limit {
		limit = len(grid)
	}

	candidates := make([]HeaderCandidate, 0, limit)
	for i := 0; i < limit; i++ {
		hits, textCells := ScoreRow(grid[i], aliases)
		candidates = append(candidates, HeaderCandidate{Hits: hits, TextCells: textCells, Row: i})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		if candidates[a].Hits != candidates[b].Hits {
			return candidates[a].Hits > candidates[b].Hits
		}
		return candidates[a].TextCells > candidates[b].TextCells
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	return candidates
}
