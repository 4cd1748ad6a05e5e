package sqlite

import (
	"context"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

const departmentColumns = `id, parent_id, name, leader, phone, sort_order, status, created_at, updated_at`

type departmentsRepo struct {
	db dbtx
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDepartment(row rowScanner) (domain.Department, error) {
	var d domain.Department
	err := row.Scan(&d.ID, &d.ParentID, &d.Name, &d.Leader, &d.Phone, &d.Order, &d.Status, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

func (r *departmentsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	depts := []domain.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		depts = append(depts, d)
	}
	return depts, rows.Err()
}

func (r *departmentsRepo) Get(ctx context.Context, id int64) (domain.Department, error) {
	d, err := scanDepartment(r.db.QueryRowContext(ctx,
		`SELECT `+departmentColumns+` FROM departments WHERE id = ?`, id))
	if err != nil {
		return domain.Department{}, mapNotFound(err)
	}
	return d, nil
}

func (r *departmentsRepo) ListAll(ctx context.Context) ([]domain.Department, error) {
	return r.list(ctx, `SELECT `+departmentColumns+` FROM departments ORDER BY sort_order, id`)
}

func (r *departmentsRepo) ListChildren(ctx context.Context, parentID int64) ([]domain.Department, error) {
	return r.list(ctx, `SELECT `+departmentColumns+` FROM departments WHERE parent_id = ? ORDER BY sort_order, id`, parentID)
}

func (r *departmentsRepo) Create(ctx context.Context, d domain.Department) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO departments (parent_id, name, leader, phone, sort_order, status) VALUES (?, ?, ?, ?, ?, ?)`,
		d.ParentID, d.Name, d.Leader, d.Phone, d.Order, d.Status,
	)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return res.LastInsertId()
}

func (r *departmentsRepo) Update(ctx context.Context, d domain.Department) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE departments
		    SET parent_id = ?, name = ?, leader = ?, phone = ?, sort_order = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		d.ParentID, d.Name, d.Leader, d.Phone, d.Order, d.Status, d.ID,
	))
}

func (r *departmentsRepo) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id))
}

func (r *departmentsRepo) CountUsers(ctx context.Context, id int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM users WHERE dept_id = ?`, id)
}

func (r *departmentsRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM departments`)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
