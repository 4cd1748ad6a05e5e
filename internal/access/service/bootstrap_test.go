package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &BootstrapService{Store: st, Token: "let-me-in"}

	t.Run("wrong token", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "guess", testSeed())
		require.ErrorIs(t, err, ErrBootstrapUnauthorized)
	})

	t.Run("seed without admin role is rejected atomically", func(t *testing.T) {
		seed := testSeed()
		seed.Roles = seed.Roles[1:]
		for i := range seed.Users {
			seed.Users[i].Roles = nil
		}
		_, err := svc.Bootstrap(ctx, "let-me-in", seed)
		require.ErrorIs(t, err, ErrValidation)

		empty, err := st.Departments().IsEmpty(ctx)
		require.NoError(t, err)
		require.True(t, empty)
	})

	t.Run("success", func(t *testing.T) {
		res, err := svc.Bootstrap(ctx, "let-me-in", testSeed())
		require.NoError(t, err)
		require.Equal(t, BootstrapResult{Departments: 4, Menus: 4, Roles: 4, Users: 4}, res)

		ok, err := svc.IsBootstrapped(ctx)
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("only once", func(t *testing.T) {
		_, err := svc.Bootstrap(ctx, "let-me-in", testSeed())
		require.ErrorIs(t, err, ErrBootstrapAlready)

		_, err = svc.Seed(ctx, testSeed())
		require.ErrorIs(t, err, ErrBootstrapAlready)
	})
}

func TestBootstrapWithoutToken(t *testing.T) {
	svc := &BootstrapService{Store: newTestStore(t)}
	_, err := svc.Bootstrap(context.Background(), "", testSeed())
	require.ErrorIs(t, err, ErrBootstrapUnauthorized)
}

func TestApplySeedValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		edit  func(s *domain.Seed)
		field string
	}{
		{"unknown parent", func(s *domain.Seed) { s.Departments[1].Parent = "nowhere" }, "departments[1].parent"},
		{"duplicate key", func(s *domain.Seed) { s.Menus[1].Key = "system" }, "menus[1].key"},
		{"parent cycle", func(s *domain.Seed) { s.Departments[0].Parent = "east" }, "departments[0].parent"},
		{"bad menu type", func(s *domain.Seed) { s.Menus[0].Type = "page" }, "menus[0].type"},
		{"bad scope", func(s *domain.Seed) { s.Roles[1].DataScope = "everyone" }, "roles[1].data_scope"},
		{"unknown menu grant", func(s *domain.Seed) { s.Roles[2].Menus = []string{"ghost"} }, "roles[2].menus"},
		{"bad role code", func(s *domain.Seed) { s.Roles[3].Code = "9lives" }, "roles[3].code"},
		{"unknown user role", func(s *domain.Seed) { s.Users[1].Roles = []string{"ghost"} }, "users[1].roles"},
		{"short password", func(s *domain.Seed) { s.Users[2].Password = "x" }, "users[2].password"},
		{"no users", func(s *domain.Seed) { s.Users = nil }, "users"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			seed := testSeed()
			tt.edit(&seed)

			_, err := (&BootstrapService{Store: st}).Seed(ctx, seed)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Contains(t, verr.Details, tt.field)
		})
	}
}

func TestLoadSeedFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(dir, "seed.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
departments:
  - key: hq
    name: HQ
  - key: sales
    parent: hq
    name: Sales
menus:
  - key: records
    name: Records
    type: menu
    path: /records
    permission: data:record:list
    keep_alive: true
roles:
  - code: admin
    name: Administrator
    data_scope: all
    menus: ["*"]
users:
  - username: admin
    password: admin-password
    department: hq
    roles: [admin]
`), 0o600))

		seed, err := LoadSeedFile(path)
		require.NoError(t, err)
		require.Len(t, seed.Departments, 2)
		require.Equal(t, "hq", seed.Departments[1].Parent)
		require.True(t, seed.Menus[0].KeepAlive)
		require.Equal(t, []string{"*"}, seed.Roles[0].Menus)
		require.Equal(t, []string{"admin"}, seed.Users[0].Roles)

		res, err := (&BootstrapService{Store: newTestStore(t)}).Seed(context.Background(), seed)
		require.NoError(t, err)
		require.Equal(t, 1, res.Users)
	})

	t.Run("unknown field", func(t *testing.T) {
		path := filepath.Join(dir, "typo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("roles:\n  - code: admin\n    menu: [\"*\"]\n"), 0o600))
		_, err := LoadSeedFile(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSeedFile(filepath.Join(dir, "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
