package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
)

const userColumns = `u.id, u.username, u.real_name, u.phone, u.email, u.password_hash, u.dept_id, u.status, u.created_at, u.updated_at`

type usersRepo struct {
	db dbtx
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u    domain.User
		dept sql.NullInt64
	)
	err := row.Scan(&u.ID, &u.Username, &u.RealName, &u.Phone, &u.Email, &u.PasswordHash, &dept, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	u.DeptID = mapNullID(dept)
	return u, err
}

func (r *usersRepo) loadRoles(ctx context.Context, users []domain.User) error {
	if len(users) == 0 {
		return nil
	}
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	groups, err := queryGroups(ctx, r.db,
		`SELECT user_id, role_id FROM user_roles WHERE user_id IN (`+placeholders(len(ids))+`) ORDER BY user_id, role_id`,
		int64Args(ids)...)
	if err != nil {
		return err
	}
	for i := range users {
		users[i].RoleIDs = append([]int64{}, groups[users[i].ID]...)
	}
	return nil
}

func (r *usersRepo) one(ctx context.Context, query string, args ...any) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	users := []domain.User{u}
	if err := r.loadRoles(ctx, users); err != nil {
		return domain.User{}, err
	}
	return users[0], nil
}

func (r *usersRepo) Get(ctx context.Context, id int64) (domain.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users u WHERE u.id = ?`, id)
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.one(ctx, `SELECT `+userColumns+` FROM users u WHERE u.username = ?`, username)
}

func userWhere(q store.UserQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if q.Username != "" {
		conds = append(conds, `u.username LIKE ? ESCAPE '\'`)
		args = append(args, likeArg(q.Username))
	}
	if q.RealName != "" {
		conds = append(conds, `u.real_name LIKE ? ESCAPE '\'`)
		args = append(args, likeArg(q.RealName))
	}
	if q.Phone != "" {
		conds = append(conds, `u.phone LIKE ? ESCAPE '\'`)
		args = append(args, likeArg(q.Phone))
	}
	if q.DeptID != 0 {
		conds = append(conds, `u.dept_id = ?`)
		args = append(args, q.DeptID)
	}
	if q.Status != nil {
		conds = append(conds, `u.status = ?`)
		args = append(args, *q.Status)
	}
	// A user's own row counts as "owned" by them.
	if clause, fargs := q.Filter.SQL("u.dept_id", "u.id"); clause != "" {
		conds = append(conds, clause)
		args = append(args, fargs...)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func pageClause(p store.Page) (string, []any) {
	if p.Limit <= 0 {
		return "", nil
	}
	return ` LIMIT ? OFFSET ?`, []any{p.Limit, max(p.Offset, 0)}
}

func (r *usersRepo) List(ctx context.Context, q store.UserQuery) ([]domain.User, int, error) {
	where, args := userWhere(q)

	total, err := count(ctx, r.db, `SELECT COUNT(*) FROM users u`+where, args...)
	if err != nil {
		return nil, 0, err
	}

	limit, largs := pageClause(q.Page)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users u`+where+` ORDER BY u.id`+limit, append(args, largs...)...)
	if err != nil {
		return nil, 0, err
	}
	users := []domain.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			_ = rows.Close()
			return nil, 0, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, 0, err
	}
	if err := rows.Close(); err != nil {
		return nil, 0, err
	}

	if err := r.loadRoles(ctx, users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) (int64, error) {
	var id int64
	err := atomic(ctx, r.db, func(q dbtx) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO users (username, real_name, phone, email, password_hash, dept_id, status) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.Username, u.RealName, u.Phone, u.Email, u.PasswordHash, mapIDNull(u.DeptID), u.Status,
		)
		if err != nil {
			return mapWriteErr(err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		return replaceLinks(ctx, q, "user_roles", "user_id", "role_id", id, u.RoleIDs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *usersRepo) Update(ctx context.Context, u domain.User) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users
		    SET real_name = ?, phone = ?, email = ?, dept_id = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = ?`,
		u.RealName, u.Phone, u.Email, mapIDNull(u.DeptID), u.ID,
	))
}

func (r *usersRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, status, id))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return expectAffected(r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, hash, id))
}

func (r *usersRepo) SetRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	return atomic(ctx, r.db, func(q dbtx) error {
		return replaceLinks(ctx, q, "user_roles", "user_id", "role_id", userID, roleIDs)
	})
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	return expectAffected(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	n, err := count(ctx, r.db, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
