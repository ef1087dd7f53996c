// Package summary 把投影后的项目汇总表还原为扁平行集：
// 清洗描述字段、识别合计/备注行、前向填充合并单元格、剔除小计行。
package summary

import (
	"strings"

	"ipmds/internal/model"
	"ipmds/internal/parser"
)

const (
	totalMarker    = "合计" // 合计行标记（项目公司列）
	subtotalMarker = "小计" // 小计行标记（业态列）
	noteMarker     = "注"  // 备注行前缀（参建单位列）
)

// Stats 汇总结果统计
type Stats struct {
	Rows int `json:"rows"`
}

// Result 汇总分析结果
type Result struct {
	SummaryRows []model.SummaryRecord `json:"summary_rows"`
	Stats       Stats                 `json:"stats"`
}

// fillState 前向填充累加器：仅普通行读写，合计/备注行既不被填充也不更新它
type fillState struct {
	company    model.Cell
	project    model.Cell
	contractor model.Cell
}

// Normalize 规范化投影后的汇总表。流程：
//  1. 清洗四个描述列（trim、全角空格转半角、空串/"nan"/"None" 归一为空值）
//  2. 标记合计行与备注行
//  3. 仅对普通行前向填充 公司/项目/参建单位 三个合并列
//  4. 剔除小计行与备注行；合计行保留但清空 项目/参建单位/业态
//  5. 丢弃整行为空的行
//
// 输出保持输入行序。
func Normalize(table *parser.Table) *Result {
	records := toRecords(table)

	for i := range records {
		records[i].ProjectCompany = cleanDescriptor(records[i].ProjectCompany)
		records[i].ProjectName = cleanDescriptor(records[i].ProjectName)
		records[i].Contractor = cleanDescriptor(records[i].Contractor)
		records[i].BusinessType = cleanDescriptor(records[i].BusinessType)
	}

	isTotal := make([]bool, len(records))
	isNote := make([]bool, len(records))
	for i, r := range records {
		isTotal[i] = r.ProjectCompany.String() == totalMarker
		isNote[i] = !r.Contractor.IsNull() && strings.HasPrefix(r.Contractor.String(), noteMarker)
	}

	var state fillState
	for i := range records {
		if isTotal[i] || isNote[i] {
			continue
		}
		records[i].ProjectCompany = state.fill(&state.company, records[i].ProjectCompany)
		records[i].ProjectName = state.fill(&state.project, records[i].ProjectName)
		records[i].Contractor = state.fill(&state.contractor, records[i].Contractor)
	}

	out := make([]model.SummaryRecord, 0, len(records))
	for i, r := range records {
		if r.BusinessType.String() == subtotalMarker {
			continue
		}
		if isNote[i] {
			continue
		}
		if isTotal[i] {
			r.ProjectName = model.NullCell()
			r.Contractor = model.NullCell()
			r.BusinessType = model.NullCell()
		}
		if r.IsEmpty() {
			continue
		}
		out = append(out, r)
	}

	return &Result{
		SummaryRows: out,
		Stats:       Stats{Rows: len(out)},
	}
}

// fill 非空则更新 last-seen，空则回填 last-seen
func (s *fillState) fill(last *model.Cell, c model.Cell) model.Cell {
	if !c.IsNull() {
		*last = c
		return c
	}
	if !last.IsNull() {
		return *last
	}
	return c
}

// cleanDescriptor 描述列单元格清洗：统一转文本、全角空格转半角、
// trim 后为空或为 "nan"/"None" 字面量的归一成空值
func cleanDescriptor(c model.Cell) model.Cell {
	if c.IsNull() {
		return c
	}
	s := strings.ReplaceAll(c.String(), "　", " ")
	s = strings.TrimSpace(s)
	if s == "" || s == "nan" || s == "None" {
		return model.NullCell()
	}
	return model.StringCell(s)
}

// toRecords 按规范列序把投影表转换为汇总记录
func toRecords(table *parser.Table) []model.SummaryRecord {
	idx := make([]int, len(model.SummaryFields))
	for i, field := range model.SummaryFields {
		idx[i] = table.ColumnIndex(field)
	}

	cell := func(row []model.Cell, i int) model.Cell {
		if idx[i] < 0 || idx[i] >= len(row) {
			return model.NullCell()
		}
		return row[idx[i]]
	}

	records := make([]model.SummaryRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, model.SummaryRecord{
			ProjectCompany:  cell(row, 0),
			ProjectName:     cell(row, 1),
			Contractor:      cell(row, 2),
			BusinessType:    cell(row, 3),
			GDUnits:         cell(row, 4),
			GDAreaM2:        cell(row, 5),
			GDPricePerM2:    cell(row, 6),
			GDTotalPrice10K: cell(row, 7),
			SignedAmount10K: cell(row, 8),
			Received10K:     cell(row, 9),
			Unpaid10K:       cell(row, 10),
		})
	}
	return records
}
