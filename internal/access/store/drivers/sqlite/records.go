package sqlite

import (
	"context"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
)

const recordColumns = `id, title, content, dept_id, created_by, created_at, updated_at`

type recordsRepo struct {
	db dbtx
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var rec domain.Record
	err := row.Scan(&rec.ID, &rec.Title, &rec.Content, &rec.DeptID, &rec.CreatedBy, &rec.CreatedAt, &rec.UpdatedAt)
	return rec, err
}

func (r *recordsRepo) Get(ctx context.Context, id int64) (domain.Record, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id))
	if err != nil {
		return domain.Record{}, mapNotFound(err)
	}
	return rec, nil
}

func (r *recordsRepo) List(ctx context.Context, q store.RecordQuery) ([]domain.Record, int, error) {
	var (
		conds []string
		args  []any
	)
	if q.Title != "" {
		conds = append(conds, `title LIKE ? ESCAPE '\'`)
		args = append(args, likeArg(q.Title))
	}
	if q.DeptID != 0 {
		conds = append(conds, `dept_id = ?`)
		args = append(args, q.DeptID)
	}
	if clause, fargs := q.Filter.SQL("dept_id", "created_by"); clause != "" {
		conds = append(conds, clause)
		args = append(args, fargs...)
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM records`+where, args...)
	if err != nil {
		return nil, 0, err
	}

	limit, largs := pageClause(q.Page)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recordColumns+` FROM records`+where+` ORDER BY id DESC`+limit, append(args, largs...)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

func (r *recordsRepo) Create(ctx context.Context, rec domain.Record) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO records (title, content, dept_id, created_by) VALUES (?, ?, ?, ?)`,
		rec.Title, rec.Content, rec.DeptID, rec.CreatedBy,
	)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return res.LastInsertId()
}

func (r *recordsRepo) Update(ctx context.Context, rec domain.Record) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE records SET title = ?, content = ?, dept_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		rec.Title, rec.Content, rec.DeptID, rec.ID,
	))
}

func (r *recordsRepo) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id))
}
