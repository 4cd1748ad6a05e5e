package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/cryptox"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

var (
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapResult counts what a seed created.
type BootstrapResult struct {
	Departments int
	Menus       int
	Roles       int
	Users       int
}

type BootstrapService struct {
	Store  store.Store
	Access AccessInvalidator
	Token  string // Pre-configured bootstrap token
}

// IsBootstrapped reports whether any account exists.
func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap seeds an empty system. It is only accepted once and only with the
// configured token.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, seed domain.Seed) (BootstrapResult, error) {
	l := slogx.FromContext(ctx)

	if bootstrapped, _ := s.IsBootstrapped(ctx); bootstrapped {
		l.Warn("attempted bootstrap on already-bootstrapped system")
		return BootstrapResult{}, ErrBootstrapAlready
	}

	if s.Token == "" || !cryptox.TokensEqual(token, s.Token) {
		l.Warn("unauthorized bootstrap attempt")
		return BootstrapResult{}, ErrBootstrapUnauthorized
	}

	return s.Seed(ctx, seed)
}

// Seed applies seed in a single transaction. It refuses a system that already
// has accounts.
func (s *BootstrapService) Seed(ctx context.Context, seed domain.Seed) (BootstrapResult, error) {
	l := slogx.FromContext(ctx)

	var res BootstrapResult
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return err
		}
		if !empty {
			return ErrBootstrapAlready
		}
		res, err = applySeed(ctx, tx, seed)
		return err
	})
	if err != nil {
		return BootstrapResult{}, err
	}

	invalidateAll(s.Access)
	l.Info("successfully bootstrapped system",
		slog.Int("departments", res.Departments),
		slog.Int("menus", res.Menus),
		slog.Int("roles", res.Roles),
		slog.Int("users", res.Users),
	)
	return res, nil
}

func applySeed(ctx context.Context, tx store.Tx, seed domain.Seed) (BootstrapResult, error) {
	var res BootstrapResult

	// 1. Departments, parents first
	deptKeys := make([]string, len(seed.Departments))
	deptParents := make([]string, len(seed.Departments))
	for i, d := range seed.Departments {
		deptKeys[i], deptParents[i] = d.Key, d.Parent
	}
	order, err := parentsFirst("departments", deptKeys, deptParents)
	if err != nil {
		return res, err
	}
	deptIDs := make(map[string]int64, len(order))
	for _, i := range order {
		d := seed.Departments[i]
		dept := domain.Department{
			ParentID: deptIDs[d.Parent],
			Name:     strings.TrimSpace(d.Name),
			Leader:   d.Leader,
			Phone:    d.Phone,
			Order:    d.Order,
			Status:   domain.StatusEnabled,
		}
		if err := validateDepartment(dept); err != nil {
			return res, seedError(fmt.Sprintf("departments[%d]", i), err)
		}
		id, err := tx.Departments().Create(ctx, dept)
		if err != nil {
			return res, fmt.Errorf("create department %q: %w", d.Key, err)
		}
		deptIDs[d.Key] = id
	}
	res.Departments = len(order)

	// 2. Menus, parents first
	menuKeys := make([]string, len(seed.Menus))
	menuParents := make([]string, len(seed.Menus))
	for i, m := range seed.Menus {
		menuKeys[i], menuParents[i] = m.Key, m.Parent
	}
	if order, err = parentsFirst("menus", menuKeys, menuParents); err != nil {
		return res, err
	}
	menuIDs := make(map[string]int64, len(order))
	allMenus := make([]int64, 0, len(order))
	for _, i := range order {
		m := seed.Menus[i]
		typ, ok := parseMenuType(m.Type)
		if !ok {
			return res, &ValidationError{Details: map[string]string{
				fmt.Sprintf("menus[%d].type", i): "must be directory, menu or button",
			}}
		}
		menu := normaliseMenu(domain.Menu{
			ParentID:       menuIDs[m.Parent],
			Name:           strings.TrimSpace(m.Name),
			Type:           typ,
			Path:           m.Path,
			Component:      m.Component,
			PermissionCode: m.Permission,
			Icon:           m.Icon,
			Order:          m.Order,
			Status:         domain.StatusEnabled,
			Visible:        !m.Hidden,
			KeepAlive:      m.KeepAlive,
		})
		if err := validateMenu(menu); err != nil {
			return res, seedError(fmt.Sprintf("menus[%d]", i), err)
		}
		id, err := tx.Menus().Create(ctx, menu)
		if err != nil {
			return res, fmt.Errorf("create menu %q: %w", m.Key, err)
		}
		menuIDs[m.Key] = id
		allMenus = append(allMenus, id)
	}
	res.Menus = len(order)

	// 3. Roles (the admin role is required)
	roleIDs := make(map[string]int64, len(seed.Roles))
	for i, r := range seed.Roles {
		scope, err := domain.ParseDataScope(r.DataScope)
		if err != nil {
			return res, &ValidationError{Details: map[string]string{
				fmt.Sprintf("roles[%d].data_scope", i): "must be all, dept, dept_and_below, self or custom",
			}}
		}
		role := domain.Role{
			Name:      strings.TrimSpace(r.Name),
			Code:      strings.TrimSpace(r.Code),
			DataScope: scope,
			Status:    domain.StatusEnabled,
			Order:     i,
			Remark:    r.Remark,
		}
		if role.MenuIDs, err = resolveKeys(r.Menus, menuIDs, allMenus); err != nil {
			return res, seedError(fmt.Sprintf("roles[%d].menus", i), err)
		}
		if scope == domain.DataScopeCustom {
			if role.DeptIDs, err = resolveKeys(r.Departments, deptIDs, nil); err != nil {
				return res, seedError(fmt.Sprintf("roles[%d].departments", i), err)
			}
		}
		if err := validateRole(role); err != nil {
			return res, seedError(fmt.Sprintf("roles[%d]", i), err)
		}
		id, err := tx.Roles().Create(ctx, role)
		if err != nil {
			return res, fmt.Errorf("create role %q: %w", r.Code, err)
		}
		roleIDs[role.Code] = id
	}
	if _, ok := roleIDs[domain.AdminRoleCode]; !ok {
		return res, &ValidationError{Details: map[string]string{"roles": "must include 'admin' role"}}
	}
	res.Roles = len(seed.Roles)

	// 4. Users
	if len(seed.Users) == 0 {
		return res, &ValidationError{Details: map[string]string{"users": "at least one user required"}}
	}
	for i, u := range seed.Users {
		field := fmt.Sprintf("users[%d]", i)
		f := fieldErrors{}
		if msg := validateUsername(u.Username); msg != "" {
			f.add(field+".username", msg)
		}
		if msg := validatePassword(u.Password); msg != "" {
			f.add(field+".password", msg)
		}
		f.check(len(u.RealName) <= 50, field+".real_name", "too long (max 50)")
		if err := f.err(); err != nil {
			return res, err
		}

		user := domain.User{Username: u.Username, RealName: u.RealName, Status: domain.StatusEnabled}
		if u.Department != "" {
			id, ok := deptIDs[u.Department]
			if !ok {
				return res, &ValidationError{Details: map[string]string{field + ".department": fmt.Sprintf("unknown department %q", u.Department)}}
			}
			user.DeptID = id
		}
		for _, code := range u.Roles {
			id, ok := roleIDs[code]
			if !ok {
				return res, &ValidationError{Details: map[string]string{field + ".roles": fmt.Sprintf("unknown role %q", code)}}
			}
			user.RoleIDs = append(user.RoleIDs, id)
		}

		hash, err := cryptox.HashPassword(u.Password)
		if err != nil {
			return res, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
		if _, err := tx.Users().Create(ctx, user); err != nil {
			return res, fmt.Errorf("create user %q: %w", u.Username, err)
		}
	}
	res.Users = len(seed.Users)

	return res, nil
}

func parseMenuType(s string) (domain.MenuType, bool) {
	for _, t := range []domain.MenuType{domain.MenuTypeDirectory, domain.MenuTypeMenu, domain.MenuTypeButton} {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, true
		}
	}
	return 0, false
}

// parentsFirst orders keyed entries so every parent precedes its children.
// Keys must be unique and parents must be known.
func parentsFirst(kind string, keys, parents []string) ([]int, error) {
	index := make(map[string]int, len(keys))
	for i, k := range keys {
		if k == "" {
			return nil, &ValidationError{Details: map[string]string{fmt.Sprintf("%s[%d].key", kind, i): "required"}}
		}
		if _, dup := index[k]; dup {
			return nil, &ValidationError{Details: map[string]string{fmt.Sprintf("%s[%d].key", kind, i): "duplicate key"}}
		}
		index[k] = i
	}

	order := make([]int, 0, len(keys))
	state := make([]int, len(keys)) // 0 unvisited, 1 visiting, 2 done
	var visit func(i int) error
	visit = func(i int) error {
		switch state[i] {
		case 1:
			return &ValidationError{Details: map[string]string{fmt.Sprintf("%s[%d].parent", kind, i): "cycle"}}
		case 2:
			return nil
		}
		state[i] = 1
		if p := parents[i]; p != "" {
			j, ok := index[p]
			if !ok {
				return &ValidationError{Details: map[string]string{fmt.Sprintf("%s[%d].parent", kind, i): fmt.Sprintf("unknown key %q", p)}}
			}
			if err := visit(j); err != nil {
				return err
			}
		}
		state[i] = 2
		order = append(order, i)
		return nil
	}
	for i := range keys {
		if err := visit(i); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// resolveKeys maps seed keys to IDs; "*" expands to all.
func resolveKeys(keys []string, ids map[string]int64, all []int64) ([]int64, error) {
	out := make([]int64, 0, len(keys))
	for _, k := range keys {
		if k == "*" && all != nil {
			return all, nil
		}
		id, ok := ids[k]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", k)
		}
		out = append(out, id)
	}
	return out, nil
}

// seedError prefixes the fields of a validation error with the seed entry
// they came from.
func seedError(prefix string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		details := make(map[string]string, len(ve.Details))
		for f, msg := range ve.Details {
			details[prefix+"."+f] = msg
		}
		return &ValidationError{Details: details}
	}
	return &ValidationError{Details: map[string]string{prefix: err.Error()}}
}
