package model

// SummaryFields 汇总表 11 个规范字段（顺序即输出顺序）
var SummaryFields = []string{
	"project_company",
	"project_name",
	"contractor",
	"business_type",
	"gd_units",
	"gd_area_m2",
	"gd_price_per_m2",
	"gd_total_price_10k",
	"signed_amount_10k",
	"received_10k",
	"unpaid_10k",
}

// SummaryRecord 项目汇总行。前四个描述性字段参与合并单元格前向填充；
// 其余为 GD（工抵）套数、面积、价格与回款口径的数值字段。
type SummaryRecord struct {
	ProjectCompany  Cell `json:"project_company"`
	ProjectName     Cell `json:"project_name"`
	Contractor      Cell `json:"contractor"`
	BusinessType    Cell `json:"business_type"`
	GDUnits         Cell `json:"gd_units"`
	GDAreaM2        Cell `json:"gd_area_m2"`
	GDPricePerM2    Cell `json:"gd_price_per_m2"`
	GDTotalPrice10K Cell `json:"gd_total_price_10k"`
	SignedAmount10K Cell `json:"signed_amount_10k"`
	Received10K     Cell `json:"received_10k"`
	Unpaid10K       Cell `json:"unpaid_10k"`
}

// IsEmpty 全部字段均为空值
func (r SummaryRecord) IsEmpty() bool {
	cells := []Cell{
		r.ProjectCompany, r.ProjectName, r.Contractor, r.BusinessType,
		r.GDUnits, r.GDAreaM2, r.GDPricePerM2, r.GDTotalPrice10K,
		r.SignedAmount10K, r.Received10K, r.Unpaid10K,
	}
	for _, c := range cells {
		if !c.IsNull() {
			return false
		}
	}
	return true
}
