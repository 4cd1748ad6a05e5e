package sqlite

import (
	"context"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

const menuColumns = `id, parent_id, name, menu_type, path, component, permission, icon, sort_order, status, visible, keep_alive, created_at, updated_at`

type menusRepo struct {
	db dbtx
}

func scanMenu(row rowScanner) (domain.Menu, error) {
	var m domain.Menu
	err := row.Scan(
		&m.ID, &m.ParentID, &m.Name, &m.Type, &m.Path, &m.Component, &m.PermissionCode,
		&m.Icon, &m.Order, &m.Status, &m.Visible, &m.KeepAlive, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *menusRepo) list(ctx context.Context, query string, args ...any) ([]domain.Menu, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menus := []domain.Menu{}
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (r *menusRepo) Get(ctx context.Context, id int64) (domain.Menu, error) {
	m, err := scanMenu(r.db.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = ?`, id))
	if err != nil {
		return domain.Menu{}, mapNotFound(err)
	}
	return m, nil
}

func (r *menusRepo) ListAll(ctx context.Context) ([]domain.Menu, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menus ORDER BY sort_order, id`)
}

func (r *menusRepo) ListChildren(ctx context.Context, parentID int64) ([]domain.Menu, error) {
	return r.list(ctx, `SELECT `+menuColumns+` FROM menus WHERE parent_id = ? ORDER BY sort_order, id`, parentID)
}

func (r *menusRepo) Create(ctx context.Context, m domain.Menu) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO menus (parent_id, name, menu_type, path, component, permission, icon, sort_order, status, visible, keep_alive)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ParentID, m.Name, m.Type, m.Path, m.Component, m.PermissionCode, m.Icon, m.Order, m.Status, m.Visible, m.KeepAlive,
	)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	return res.LastInsertId()
}

func (r *menusRepo) Update(ctx context.Context, m domain.Menu) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE menus
		    SET parent_id = ?, name = ?, menu_type = ?, path = ?, component = ?, permission = ?, icon = ?,
		        sort_order = ?, status = ?, visible = ?, keep_alive = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		m.ParentID, m.Name, m.Type, m.Path, m.Component, m.PermissionCode, m.Icon,
		m.Order, m.Status, m.Visible, m.KeepAlive, m.ID,
	))
}

// Delete relies on role_menus cascading.
func (r *menusRepo) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.ExecContext(ctx, `DELETE FROM menus WHERE id = ?`, id))
}
