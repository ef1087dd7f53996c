package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseCell_Kinds(t *testing.T) {
	t.Parallel()

	if c := ParseCell("  "); !c.IsNull() {
		t.Fatalf("whitespace-only cell should be null")
	}
	if c := ParseCell("88.5"); c.Kind != CellNumber || c.Num != 88.5 {
		t.Fatalf("numeric cell misparsed: %+v", c)
	}
	if c := ParseCell("已售"); c.Kind != CellString || c.String() != "已售" {
		t.Fatalf("text cell misparsed: %+v", c)
	}
}

func TestCell_MarshalJSON(t *testing.T) {
	t.Parallel()

	record := UnitRecord{
		UnitNo:    "101",
		Status:    StringCell("已售"),
		AreaM2:    NumberCell("88.5", 88.5),
		BuyerName: NullCell(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"unit_no":"101","status":"已售","area_m2":88.5,"buyer_name":null}`
	if string(data) != want {
		t.Fatalf("marshal mismatch:\n got: %s\nwant: %s", data, want)
	}
}

func TestCell_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var record UnitRecord
	payload := `{"unit_no":"101","status":"sold","area_m2":88,"buyer_name":null}`
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if record.AreaM2.Kind != CellNumber || record.AreaM2.String() != "88" {
		t.Fatalf("area cell: %+v", record.AreaM2)
	}
	if !record.BuyerName.IsNull() {
		t.Fatalf("buyer cell should be null")
	}
	if record.Status.Kind != CellString {
		t.Fatalf("status cell: %+v", record.Status)
	}
}

func TestParseCell_NonFiniteLiteralsStayText(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"nan", "NaN", "inf", "-Inf", "+inf"} {
		c := ParseCell(raw)
		if c.Kind != CellString {
			t.Fatalf("ParseCell(%q) kind = %v, want string", raw, c.Kind)
		}
	}
}

func TestCell_MarshalJSON_IrregularNumericTokens(t *testing.T) {
	t.Parallel()

	// ParseFloat 接受但不是合法 JSON 数字的录入形态：序列化结果必须仍是合法 JSON
	cases := map[string]string{
		"nan": `"nan"`, // 文本，原样输出为字符串
		"inf": `"inf"`,
		"+88": `88`, // 数值，退化为规范十进制形态
		".5":  `0.5`,
		"1_0": `10`,
	}
	for raw, want := range cases {
		data, err := json.Marshal(ParseCell(raw))
		if err != nil {
			t.Fatalf("marshal %q: %v", raw, err)
		}
		if !json.Valid(data) {
			t.Fatalf("marshal %q produced invalid JSON: %s", raw, data)
		}
		if string(data) != want {
			t.Fatalf("marshal %q = %s, want %s", raw, data, want)
		}
	}

	// 直接构造的非有限数值单元格统一落为 null
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		data, err := json.Marshal(NumberCell("x", v))
		if err != nil {
			t.Fatalf("marshal non-finite: %v", err)
		}
		if string(data) != "null" {
			t.Fatalf("non-finite number must marshal to null, got %s", data)
		}
	}
}

func TestCell_NumberStringFormPreserved(t *testing.T) {
	t.Parallel()

	// 录入形态 "88.0" 与 "88" 在字符串口径下保持区分
	a := ParseCell("88.0")
	b := ParseCell("88")
	if a.String() == b.String() {
		t.Fatalf("raw numeric forms must stay distinct: %q vs %q", a.String(), b.String())
	}
	if a.Num != b.Num {
		t.Fatalf("numeric values should coincide")
	}
}
