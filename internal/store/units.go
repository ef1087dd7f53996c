package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"ipmds/internal/model"
)

// UnitsByProject 读取某项目的全部参照房源。
// unit_no 出库即 trim，与导入侧保持同一连接键口径。
func (s *Store) UnitsByProject(ctx context.Context, projectID int64) ([]model.UnitRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT unit_no, status, area_m2, buyer_name
		FROM units
		WHERE project_id = ?
		ORDER BY id
	`, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query units: %w", err)
	}
	defer rows.Close()

	var records []model.UnitRecord
	for rows.Next() {
		var unitNo string
		var status, areaM2, buyerName sql.NullString
		if err := rows.Scan(&unitNo, &status, &areaM2, &buyerName); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		records = append(records, model.UnitRecord{
			UnitNo:    strings.TrimSpace(unitNo),
			Status:    nullStringCell(status),
			AreaM2:    nullValueCell(areaM2),
			BuyerName: nullStringCell(buyerName),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return records, nil
}

// ReplaceProjectUnits 整体替换某项目的参照房源
func (s *Store) ReplaceProjectUnits(ctx context.Context, projectID int64, records []model.UnitRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM units WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("failed to clear units: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO units (project_id, unit_no, status, area_m2, buyer_name)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			projectID,
			strings.TrimSpace(r.UnitNo),
			cellToNullString(r.Status),
			cellToNullFloat(r.AreaM2),
			cellToNullString(r.BuyerName),
		)
		if err != nil {
			return fmt.Errorf("failed to insert unit %s: %w", r.UnitNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CountProjectUnits 统计某项目的参照房源数
func (s *Store) CountProjectUnits(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM units WHERE project_id = ?`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count units: %w", err)
	}
	return count, nil
}

func nullStringCell(v sql.NullString) model.Cell {
	if !v.Valid || strings.TrimSpace(v.String) == "" {
		return model.NullCell()
	}
	return model.StringCell(v.String)
}

// nullValueCell 数值列走 ParseCell，使 88.0 入库后以 "88" 的形态参与比对。
// database/sql 把 REAL 扫成 %g 形态（1000000 → "1e+06"），统一成十进制
// 形态后再参与字符串口径的比对。
func nullValueCell(v sql.NullString) model.Cell {
	if !v.Valid {
		return model.NullCell()
	}
	c := model.ParseCell(v.String)
	if c.Kind == model.CellNumber {
		return model.NumberCell(strconv.FormatFloat(c.Num, 'f', -1, 64), c.Num)
	}
	return c
}

func cellToNullString(c model.Cell) sql.NullString {
	if c.IsNull() {
		return sql.NullString{}
	}
	return sql.NullString{String: c.String(), Valid: true}
}

func cellToNullFloat(c model.Cell) interface{} {
	if c.IsNull() {
		return nil
	}
	if c.Kind == model.CellNumber {
		return c.Num
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(c.String()), 64); err == nil {
		return v
	}
	// 非数值面积原样落为文本，读取时再按字符串形态比对
	return c.String()
}
