package sqlite

import (
	"context"

	"github.com/aussiebroadwan/access/internal/access/domain"
)

const roleColumns = `id, name, code, data_scope, sort_order, status, remark, created_at, updated_at`

type rolesRepo struct {
	db dbtx
}

func scanRole(row rowScanner) (domain.Role, error) {
	var r domain.Role
	err := row.Scan(&r.ID, &r.Name, &r.Code, &r.DataScope, &r.Order, &r.Status, &r.Remark, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

// loadGrants fills MenuIDs and DeptIDs for roles. Both are never nil.
func (r *rolesRepo) loadGrants(ctx context.Context, roles []domain.Role) error {
	if len(roles) == 0 {
		return nil
	}
	ids := make([]int64, len(roles))
	for i, role := range roles {
		ids[i] = role.ID
	}
	in := placeholders(len(ids))

	menus, err := queryGroups(ctx, r.db,
		`SELECT role_id, menu_id FROM role_menus WHERE role_id IN (`+in+`) ORDER BY role_id, menu_id`, int64Args(ids)...)
	if err != nil {
		return err
	}
	depts, err := queryGroups(ctx, r.db,
		`SELECT role_id, dept_id FROM role_depts WHERE role_id IN (`+in+`) ORDER BY role_id, dept_id`, int64Args(ids)...)
	if err != nil {
		return err
	}

	for i := range roles {
		roles[i].MenuIDs = append([]int64{}, menus[roles[i].ID]...)
		roles[i].DeptIDs = append([]int64{}, depts[roles[i].ID]...)
	}
	return nil
}

func (r *rolesRepo) one(ctx context.Context, query string, args ...any) (domain.Role, error) {
	role, err := scanRole(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.Role{}, mapNotFound(err)
	}
	roles := []domain.Role{role}
	if err := r.loadGrants(ctx, roles); err != nil {
		return domain.Role{}, err
	}
	return roles[0], nil
}

func (r *rolesRepo) list(ctx context.Context, query string, args ...any) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	roles := []domain.Role{}
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Close before loading grants; a transaction holds a single connection.
	if err := rows.Close(); err != nil {
		return nil, err
	}

	if err := r.loadGrants(ctx, roles); err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *rolesRepo) Get(ctx context.Context, id int64) (domain.Role, error) {
	return r.one(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = ?`, id)
}

func (r *rolesRepo) GetByCode(ctx context.Context, code string) (domain.Role, error) {
	return r.one(ctx, `SELECT `+roleColumns+` FROM roles WHERE code = ?`, code)
}

func (r *rolesRepo) ListAll(ctx context.Context) ([]domain.Role, error) {
	return r.list(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY sort_order, id`)
}

func (r *rolesRepo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Role, error) {
	if len(ids) == 0 {
		return []domain.Role{}, nil
	}
	return r.list(ctx,
		`SELECT `+roleColumns+` FROM roles WHERE id IN (`+placeholders(len(ids))+`) ORDER BY sort_order, id`,
		int64Args(ids)...)
}

func (r *rolesRepo) Create(ctx context.Context, role domain.Role) (int64, error) {
	var id int64
	err := atomic(ctx, r.db, func(q dbtx) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO roles (name, code, data_scope, sort_order, status, remark) VALUES (?, ?, ?, ?, ?, ?)`,
			role.Name, role.Code, role.DataScope, role.Order, role.Status, role.Remark,
		)
		if err != nil {
			return mapWriteErr(err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		if err := replaceLinks(ctx, q, "role_menus", "role_id", "menu_id", id, role.MenuIDs); err != nil {
			return err
		}
		return replaceLinks(ctx, q, "role_depts", "role_id", "dept_id", id, role.DeptIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *rolesRepo) Update(ctx context.Context, role domain.Role) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE roles
		    SET name = ?, code = ?, data_scope = ?, sort_order = ?, status = ?, remark = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		role.Name, role.Code, role.DataScope, role.Order, role.Status, role.Remark, role.ID,
	))
}

func (r *rolesRepo) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.ExecContext(ctx, `DELETE FROM roles WHERE id = ?`, id))
}

func (r *rolesRepo) SetMenus(ctx context.Context, roleID int64, menuIDs []int64) error {
	return atomic(ctx, r.db, func(q dbtx) error {
		return replaceLinks(ctx, q, "role_menus", "role_id", "menu_id", roleID, menuIDs)
	})
}

func (r *rolesRepo) SetDepts(ctx context.Context, roleID int64, deptIDs []int64) error {
	return atomic(ctx, r.db, func(q dbtx) error {
		return replaceLinks(ctx, q, "role_depts", "role_id", "dept_id", roleID, deptIDs)
	})
}

func (r *rolesRepo) CountUsers(ctx context.Context, roleID int64) (int, error) {
	return count(ctx, r.db, `SELECT COUNT(*) FROM user_roles WHERE role_id = ?`, roleID)
}

func (r *rolesRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM roles`)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
