package parser

// FieldAlias 一个规范字段可接受的表头写法集合。
// Aliases 按优先级排列：列表越靠前越优先匹配。
type FieldAlias struct {
	Field   string
	Aliases []string
}

// AliasMap 规范字段 → 别名列表，按字段处理顺序排列。
// 进程启动后只读，可被任意并发读取。
type AliasMap []FieldAlias

// Fields 按顺序返回全部规范字段名
func (m AliasMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for _, fa := range m {
		fields = append(fields, fa.Field)
	}
	return fields
}

// UnitAliases 房源表的别名表
var UnitAliases = AliasMap{
	{Field: "unit_no", Aliases: []string{"房号", "房屋编号", "房间号", "房间编号", "单元号", "房间全称", "unit", "unit_no"}},
	{Field: "status", Aliases: []string{"状态", "当前状态", "工抵状态", "签约状态", "销售状态", "status"}},
	{Field: "area_m2", Aliases: []string{"面积", "建筑面积", "实测面积", "面积㎡", "m2", "area", "area_m2"}},
	{Field: "buyer_name", Aliases: []string{"买受人", "客户名称", "客户", "客户姓名", "购房人", "buyer_name"}},
}

// SummaryAliases 项目汇总表的别名表
var SummaryAliases = AliasMap{
	{Field: "project_company", Aliases: []string{"项目公司", "公司", "项目公司名称"}},
	{Field: "project_name", Aliases: []string{"项目名称", "项目案名", "项目名称(项目案名)", "项目名称（项目案名）"}},
	{Field: "contractor", Aliases: []string{"参建单位", "分包", "总包", "施工单位"}},
	{Field: "business_type", Aliases: []string{"业态", "物业类型"}},
	{Field: "gd_units", Aliases: []string{"GD套数", "套数"}},
	{Field: "gd_area_m2", Aliases: []string{"GD面积(m2)", "GD面积（m2）", "GD面积", "面积(m2)"}},
	{Field: "gd_price_per_m2", Aliases: []string{"GD成交单价(元/m2)", "GD成交单价（元/m2）", "成交单价"}},
	{Field: "gd_total_price_10k", Aliases: []string{"GD成交总价(万元)", "GD成交总价（万元）", "成交总价(万元)"}},
	{Field: "signed_amount_10k", Aliases: []string{"签约金额(万元)", "签约金额（万元）", "签约金额"}},
	{Field: "received_10k", Aliases: []string{"GD已收款(万元)", "GD已收款（万元）", "已收款(万元)"}},
	{Field: "unpaid_10k", Aliases: []string{"GD未达款(万元)", "GD未达款（万元）", "未达款(万元)"}},
}
