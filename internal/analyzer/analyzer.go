// Package analyzer 按模式调度核心流水线：
// 原始字节 → Grid → 表头定位/别名重命名/投影 → 比对 或 汇总规范化。
package analyzer

import (
	"context"
	"fmt"

	"ipmds/internal/diff"
	"ipmds/internal/model"
	"ipmds/internal/parser"
	"ipmds/internal/summary"
)

// 分析模式
const (
	ModeSummary = "summary"
	ModeUnit    = "unit"
)

// UnitFields 房源表必需的规范字段
var UnitFields = []string{"unit_no", "status", "area_m2", "buyer_name"}

// ReferenceSource 参照库读取接口（核心对持久化层的唯一依赖：一条读查询）
type ReferenceSource interface {
	UnitsByProject(ctx context.Context, projectID int64) ([]model.UnitRecord, error)
}

// Analyzer 请求级的纯转换器，自身无状态、无共享可变数据
type Analyzer struct {
	refs        ReferenceSource
	maxScanRows int
}

// New 创建分析器。maxScanRows <= 0 时使用默认扫描行数。
func New(refs ReferenceSource, maxScanRows int) *Analyzer {
	if maxScanRows <= 0 {
		maxScanRows = parser.DefaultMaxScanRows
	}
	return &Analyzer{refs: refs, maxScanRows: maxScanRows}
}

// AnalyzeUnits 房源比对模式：解析、投影、取参照集、比对分类
func (a *Analyzer) AnalyzeUnits(ctx context.Context, content []byte, projectID int64) (*diff.Result, error) {
	incoming, err := a.ExtractUnits(content)
	if err != nil {
		return nil, err
	}

	reference, err := a.refs.UnitsByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference units: %w", err)
	}

	return diff.Compare(incoming, reference), nil
}

// ExtractUnits 从上传字节中抽取规范化房源记录（连接键统一 trim）
func (a *Analyzer) ExtractUnits(content []byte) ([]model.UnitRecord, error) {
	grid, err := parser.ReadGrid(content)
	if err != nil {
		return nil, err
	}

	table, err := parser.ProjectSchema(grid, parser.UnitAliases, UnitFields, a.maxScanRows)
	if err != nil {
		return nil, err
	}
	parser.StringifyColumn(table, "unit_no")

	records := make([]model.UnitRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		records = append(records, model.UnitRecord{
			UnitNo:    row[0].String(),
			Status:    row[1],
			AreaM2:    row[2],
			BuyerName: row[3],
		})
	}
	return records, nil
}

// AnalyzeSummary 项目汇总模式：解析、投影、层级规范化
func (a *Analyzer) AnalyzeSummary(content []byte) (*summary.Result, error) {
	grid, err := parser.ReadGrid(content)
	if err != nil {
		return nil, err
	}

	table, err := parser.ProjectSchema(grid, parser.SummaryAliases, model.SummaryFields, a.maxScanRows)
	if err != nil {
		return nil, err
	}

	return summary.Normalize(table), nil
}
