package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/stretchr/testify/require"
)

type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate()          { c.n++ }
func (c *countingInvalidator) InvalidateUser(int64) {}

func TestHousekeepingAudit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewHousekeepingService(f.store, f.access, logger, time.Hour)

	t.Run("clean seed", func(t *testing.T) {
		findings, err := svc.Audit(ctx)
		require.NoError(t, err)
		require.Empty(t, findings)
	})

	t.Run("reports problems", func(t *testing.T) {
		_, err := f.store.Departments().Create(ctx, domain.Department{ParentID: 999, Name: "Lost", Status: domain.StatusEnabled})
		require.NoError(t, err)

		clerk, err := f.store.Roles().Get(ctx, f.roleID(t, "clerk"))
		require.NoError(t, err)
		require.NoError(t, f.store.Roles().SetDepts(ctx, clerk.ID, []int64{f.deptID(t, "Ops")}))

		system, users := f.menuID(t, "System"), f.menuID(t, "Users")
		m, err := f.store.Menus().Get(ctx, system)
		require.NoError(t, err)
		m.ParentID = users
		require.NoError(t, f.store.Menus().Update(ctx, m))

		findings, err := svc.Audit(ctx)
		require.NoError(t, err)

		kinds := map[string]bool{}
		for _, fd := range findings {
			kinds[fd.Kind] = true
		}
		require.True(t, kinds["dangling_dept_parent"])
		require.True(t, kinds["unused_custom_depts"])
		require.True(t, kinds["menu_cycle"])
	})
}

func TestHousekeepingLifecycle(t *testing.T) {
	inv := &countingInvalidator{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewHousekeepingService(newTestStore(t), inv, logger, time.Hour)

	svc.Start()
	svc.Stop()

	// The first tick runs before the ticker fires.
	require.Equal(t, 1, inv.n)
}
