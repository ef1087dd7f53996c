package model

import "time"

// UnitRecord 房源记录（Excel 导入侧与参照库侧共用的规范化形态）。
// UnitNo 作为合并键，入库与解析两侧均做 trim，保证精确字符串连接。
type UnitRecord struct {
	UnitNo    string `json:"unit_no"`
	Status    Cell   `json:"status"`
	AreaM2    Cell   `json:"area_m2"`
	BuyerName Cell   `json:"buyer_name"`
}

// AnalyzeLog 一次比对/汇总分析的记录（边界层写入，核心不落库）
type AnalyzeLog struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Mode      string    `json:"mode"`
	ProjectID int64     `json:"projectId"`
	Added     int       `json:"added"`
	Modified  int       `json:"modified"`
	Unchanged int       `json:"unchanged"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"createdAt"`
}
