package store

import (
	"context"
	"path/filepath"
	"testing"

	"ipmds/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "ipmds.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestReplaceAndQueryUnits(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	units := []model.UnitRecord{
		{UnitNo: " 1-101 ", Status: model.StringCell("已售"), AreaM2: model.NumberCell("88.5", 88.5), BuyerName: model.StringCell("张三")},
		{UnitNo: "1-102", Status: model.NullCell(), AreaM2: model.NullCell(), BuyerName: model.NullCell()},
	}

	if err := s.ReplaceProjectUnits(ctx, 1, units); err != nil {
		t.Fatalf("replace units: %v", err)
	}

	got, err := s.UnitsByProject(ctx, 1)
	if err != nil {
		t.Fatalf("query units: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 units, got %d", len(got))
	}

	// 连接键入库与出库均 trim
	if got[0].UnitNo != "1-101" {
		t.Fatalf("unit_no must be trimmed, got %q", got[0].UnitNo)
	}
	if got[0].AreaM2.Kind != model.CellNumber || got[0].AreaM2.Float() != 88.5 {
		t.Fatalf("area cell mismatch: %+v", got[0].AreaM2)
	}
	if !got[1].Status.IsNull() || !got[1].BuyerName.IsNull() {
		t.Fatalf("null fields must round-trip as null: %+v", got[1])
	}

	// 替换是整体覆盖
	if err := s.ReplaceProjectUnits(ctx, 1, units[:1]); err != nil {
		t.Fatalf("replace units again: %v", err)
	}
	count, err := s.CountProjectUnits(ctx, 1)
	if err != nil {
		t.Fatalf("count units: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 unit after replace, got %d", count)
	}
}

func TestUnitsByProject_LargeAreaDecimalForm(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	// REAL 经 database/sql 读回是 %g 形态（1e+06）；出库必须还原成
	// 十进制形态，避免与表格里的 "1000000" 在字符串口径下误报差异
	units := []model.UnitRecord{
		{UnitNo: "1-101", AreaM2: model.NumberCell("1000000", 1000000)},
	}
	if err := s.ReplaceProjectUnits(ctx, 1, units); err != nil {
		t.Fatalf("replace units: %v", err)
	}

	got, err := s.UnitsByProject(ctx, 1)
	if err != nil {
		t.Fatalf("query units: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unit count = %d, want 1", len(got))
	}
	if got[0].AreaM2.String() != "1000000" {
		t.Fatalf("area string form = %q, want 1000000", got[0].AreaM2.String())
	}
	if got[0].AreaM2.Float() != 1000000 {
		t.Fatalf("area numeric value = %v, want 1000000", got[0].AreaM2.Float())
	}
}

func TestUnitsByProject_ScopedByProject(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceProjectUnits(ctx, 1, []model.UnitRecord{{UnitNo: "1-101"}}); err != nil {
		t.Fatalf("replace project 1: %v", err)
	}
	if err := s.ReplaceProjectUnits(ctx, 2, []model.UnitRecord{{UnitNo: "2-201"}, {UnitNo: "2-202"}}); err != nil {
		t.Fatalf("replace project 2: %v", err)
	}

	got, err := s.UnitsByProject(ctx, 2)
	if err != nil {
		t.Fatalf("query units: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 units for project 2, got %d", len(got))
	}
	for _, u := range got {
		if u.UnitNo == "1-101" {
			t.Fatalf("project scoping leaked units across projects")
		}
	}
}

func TestAnalyzeLogRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	ctx := context.Background()

	log := model.AnalyzeLog{
		ID:        "log-1",
		Filename:  "台账.xlsx",
		Mode:      "unit",
		ProjectID: 1,
		Added:     3,
		Modified:  1,
		Unchanged: 5,
	}
	if err := s.InsertAnalyzeLog(ctx, log); err != nil {
		t.Fatalf("insert log: %v", err)
	}

	logs, err := s.RecentAnalyzeLogs(ctx, 10)
	if err != nil {
		t.Fatalf("query logs: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}
	got := logs[0]
	if got.ID != "log-1" || got.Mode != "unit" || got.Added != 3 || got.Unchanged != 5 {
		t.Fatalf("log mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("created_at must be populated")
	}
}
