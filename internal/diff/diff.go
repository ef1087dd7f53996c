// Package diff 把 Excel 导入的房源记录与参照库记录做合并比对，
// 将每条导入记录归类为 新增 / 有变更 / 无变更 三类之一。
package diff

import (
	"ipmds/internal/model"
)

// CompareFields 参与差异比对的非键字段（连接键 unit_no 除外）
var CompareFields = []string{"status", "area_m2", "buyer_name"}

// FieldDiff 单字段两侧取值（excel 为导入侧，db 为参照库侧）
type FieldDiff struct {
	Excel model.Cell `json:"excel"`
	DB    model.Cell `json:"db"`
}

// ModifiedRow 有变更的记录：键、字段级差异、完整导入行
type ModifiedRow struct {
	UnitNo string               `json:"unit_no"`
	Diffs  map[string]FieldDiff `json:"diffs"`
	Excel  model.UnitRecord     `json:"excel"`
}

// Stats 三类计数，恒等于导入记录总数的一个精确划分
type Stats struct {
	Added     int `json:"added"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

// Result 比对结果
type Result struct {
	AddedRows    []model.UnitRecord `json:"added_rows"`
	ModifiedRows []ModifiedRow      `json:"modified_rows"`
	Stats        Stats              `json:"stats"`
}

// Compare 以导入记录为驱动侧、按 unit_no 左连接参照记录并分类。
// 参照库为空时全部判新增。字段比对规则：两侧皆空视为相等，
// 否则比较字符串形态（保留既有口径：不做数值等价判断）。
func Compare(incoming []model.UnitRecord, reference []model.UnitRecord) *Result {
	result := &Result{
		AddedRows:    []model.UnitRecord{},
		ModifiedRows: []ModifiedRow{},
	}

	if len(reference) == 0 {
		result.AddedRows = append(result.AddedRows, incoming...)
		result.Stats.Added = len(incoming)
		return result
	}

	// 重复键取先出现的参照行，保证三类计数精确划分导入行数
	refByKey := make(map[string]model.UnitRecord, len(reference))
	for _, r := range reference {
		if _, exists := refByKey[r.UnitNo]; !exists {
			refByKey[r.UnitNo] = r
		}
	}

	for _, in := range incoming {
		ref, matched := refByKey[in.UnitNo]
		if !matched {
			result.AddedRows = append(result.AddedRows, in)
			result.Stats.Added++
			continue
		}

		diffs := make(map[string]FieldDiff)
		for _, field := range CompareFields {
			excelVal := fieldValue(in, field)
			dbVal := fieldValue(ref, field)
			if excelVal.IsNull() && dbVal.IsNull() {
				continue
			}
			if excelVal.String() != dbVal.String() {
				diffs[field] = FieldDiff{Excel: excelVal, DB: dbVal}
			}
		}

		if len(diffs) > 0 {
			result.ModifiedRows = append(result.ModifiedRows, ModifiedRow{
				UnitNo: in.UnitNo,
				Diffs:  diffs,
				Excel:  in,
			})
			result.Stats.Modified++
		} else {
			result.Stats.Unchanged++
		}
	}

	return result
}

func fieldValue(r model.UnitRecord, field string) model.Cell {
	switch field {
	case "status":
		return r.Status
	case "area_m2":
		return r.AreaM2
	case "buyer_name":
		return r.BuyerName
	}
	return model.NullCell()
}
