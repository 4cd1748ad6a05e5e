package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/stretchr/testify/require"
)

func TestRecordServiceScopes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	hq, sales, east, ops := f.deptID(t, "HQ"), f.deptID(t, "Sales"), f.deptID(t, "East"), f.deptID(t, "Ops")

	admin := f.caller(t, "admin")
	mia := f.caller(t, "mia")
	carl := f.caller(t, "carl")
	aude := f.caller(t, "aude")

	for _, r := range []domain.Record{
		{Title: "hq plan", DeptID: hq},
		{Title: "sales plan", DeptID: sales},
		{Title: "east plan", DeptID: east},
		{Title: "ops plan", DeptID: ops},
	} {
		_, err := f.records.Create(ctx, admin, r)
		require.NoError(t, err)
	}

	t.Run("create defaults to the caller's department", func(t *testing.T) {
		r, err := f.records.Create(ctx, carl, domain.Record{Title: "  carl note  "})
		require.NoError(t, err)
		require.Equal(t, east, r.DeptID)
		require.Equal(t, carl.Result.UserID, r.CreatedBy)
		require.Equal(t, "carl note", r.Title)
	})

	t.Run("create outside scope", func(t *testing.T) {
		_, err := f.records.Create(ctx, mia, domain.Record{Title: "ops note", DeptID: ops})
		require.ErrorIs(t, err, ErrOutOfScope)

		_, err = f.records.Create(ctx, carl, domain.Record{Title: "sales note", DeptID: sales})
		require.ErrorIs(t, err, ErrOutOfScope)
	})

	titles := func(t *testing.T, caller ScopeInfo) []string {
		t.Helper()
		recs, total, err := f.records.List(ctx, caller, store.RecordQuery{})
		require.NoError(t, err)
		require.Equal(t, len(recs), total)
		out := make([]string, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.Title)
		}
		return out
	}

	t.Run("list", func(t *testing.T) {
		require.ElementsMatch(t, []string{"hq plan", "sales plan", "east plan", "ops plan", "carl note"}, titles(t, admin))
		require.ElementsMatch(t, []string{"sales plan", "east plan", "carl note"}, titles(t, mia))
		require.ElementsMatch(t, []string{"carl note"}, titles(t, carl))
		require.ElementsMatch(t, []string{"east plan", "ops plan", "carl note"}, titles(t, aude))
	})

	t.Run("get, update and delete hide out of scope rows", func(t *testing.T) {
		recs, _, err := f.records.List(ctx, admin, store.RecordQuery{Title: "ops plan"})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		opsPlan := recs[0]

		_, err = f.records.Get(ctx, mia, opsPlan.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		opsPlan.Title = "hijacked"
		_, err = f.records.Update(ctx, mia, opsPlan)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, f.records.Delete(ctx, mia, opsPlan.ID), store.ErrNotFound)

		got, err := f.records.Get(ctx, aude, opsPlan.ID)
		require.NoError(t, err)
		require.Equal(t, "ops plan", got.Title)
	})

	t.Run("update may not move rows out of scope", func(t *testing.T) {
		recs, _, err := f.records.List(ctx, mia, store.RecordQuery{Title: "sales plan"})
		require.NoError(t, err)
		require.Len(t, recs, 1)

		r := recs[0]
		r.DeptID = ops
		_, err = f.records.Update(ctx, mia, r)
		require.ErrorIs(t, err, ErrOutOfScope)

		r.DeptID = east
		r.Content = "moved"
		moved, err := f.records.Update(ctx, mia, r)
		require.NoError(t, err)
		require.Equal(t, east, moved.DeptID)
		require.Equal(t, "moved", moved.Content)
		require.Equal(t, admin.Result.UserID, moved.CreatedBy)
	})

	t.Run("delete", func(t *testing.T) {
		recs, _, err := f.records.List(ctx, carl, store.RecordQuery{})
		require.NoError(t, err)
		require.Len(t, recs, 1)
		require.NoError(t, f.records.Delete(ctx, carl, recs[0].ID))
		require.Empty(t, titles(t, carl))
	})

	t.Run("scope", func(t *testing.T) {
		info, err := f.records.Scope(ctx, aude.Result.UserID)
		require.NoError(t, err)
		require.Equal(t, domain.DataScopeCustom, info.Result.Policy)
		require.Equal(t, []int64{east, ops}, info.CustomDeptIDs)
	})
}
