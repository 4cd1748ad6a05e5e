package service

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/idx"
	"github.com/aussiebroadwan/access/pkg/metrics"
	"github.com/aussiebroadwan/access/pkg/slogx"
)

// AccessInvalidator is notified by the admin services after writes that
// change someone's effective access.
type AccessInvalidator interface {
	// Invalidate drops the snapshot and every cached result.
	Invalidate()

	// InvalidateUser drops the cached result of a single user.
	InvalidateUser(userID int64)
}

func invalidateAll(a AccessInvalidator) {
	if a != nil {
		a.Invalidate()
	}
}

func invalidateUser(a AccessInvalidator, userID int64) {
	if a != nil {
		a.InvalidateUser(userID)
	}
}

// resolved is what the result cache holds per user.
type resolved struct {
	result        policy.AccessResult
	user          domain.User
	customDeptIDs []int64
}

// ScopeInfo explains a user's effective data scope.
type ScopeInfo struct {
	Result        policy.AccessResult
	DeptID        int64
	CustomDeptIDs []int64
}

// AccessService resolves users against a cached snapshot of departments,
// roles and menus. Results are keyed by snapshot revision and by a per-user
// generation, so neither Invalidate nor InvalidateUser can be overtaken by a
// resolution that read its inputs earlier.
type AccessService struct {
	Store store.Store

	cache *ristretto.Cache[string, resolved]
	ttl   time.Duration

	mu   sync.Mutex
	snap *policy.Snapshot
	rev  idx.ID
	gen  map[int64]uint64 // per user, reset with rev
}

// NewAccessService creates the service with a result cache bounded to
// maxEntries users. Cached results expire after ttl even without an
// invalidation, which bounds staleness after writes made by other processes.
func NewAccessService(st store.Store, maxEntries int64, ttl time.Duration) (*AccessService, error) {
	if maxEntries <= 0 {
		maxEntries = 10_000
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, resolved]{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &AccessService{
		Store: st,
		cache: cache,
		ttl:   ttl,
		rev:   idx.New(),
		gen:   make(map[int64]uint64),
	}, nil
}

// Close stops the cache's background goroutines.
func (s *AccessService) Close() { s.cache.Close() }

func (s *AccessService) Invalidate() {
	s.mu.Lock()
	s.snap = nil
	s.rev = idx.New()
	clear(s.gen)
	s.mu.Unlock()

	s.cache.Clear()
	metrics.RecordCacheEvent(metrics.CacheClear)
}

// InvalidateUser moves the user to a new cache generation. A lookup that
// read the user before this call stores its result under the old
// generation, where nothing reads it again.
func (s *AccessService) InvalidateUser(userID int64) {
	s.mu.Lock()
	old := cacheKey(s.rev, userID, s.gen[userID])
	s.gen[userID]++
	s.mu.Unlock()
	s.cache.Del(old)
}

func cacheKey(rev idx.ID, userID int64, gen uint64) string {
	return rev.String() + ":" + strconv.FormatInt(userID, 10) + ":" + strconv.FormatUint(gen, 10)
}

// snapshot returns the current snapshot, loading it when missing, and the
// cache key userID's result belongs under.
func (s *AccessService) snapshot(ctx context.Context, userID int64) (*policy.Snapshot, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap == nil {
		snap, err := s.loadSnapshot(ctx)
		if err != nil {
			metrics.RecordSnapshotBuild(metrics.SnapshotFailed)
			return nil, "", err
		}
		metrics.RecordSnapshotBuild(metrics.SnapshotOK)
		s.snap = snap
	}
	return s.snap, cacheKey(s.rev, userID, s.gen[userID]), nil
}

func (s *AccessService) loadSnapshot(ctx context.Context) (*policy.Snapshot, error) {
	depts, err := s.Store.Departments().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.Store.Roles().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	menus, err := s.Store.Menus().ListAll(ctx)
	if err != nil {
		return nil, err
	}

	snap, err := policy.NewSnapshot(depts, roles, menus)
	if err != nil {
		slogx.FromContext(ctx).Error("access snapshot rejected", slog.Any("error", err))
		return nil, err
	}
	return snap, nil
}

func (s *AccessService) resolve(ctx context.Context, userID int64) (resolved, *policy.Snapshot, error) {
	start := time.Now()
	out, snap, err := s.lookup(ctx, userID)

	outcome := metrics.OutcomeGranted
	switch {
	case err != nil:
		outcome = metrics.OutcomeError
	case len(out.result.PermissionCodes) == 0 && len(out.result.VisibleDeptIDs) == 0 && !out.result.OwnerOnly:
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordResolution(outcome, time.Since(start).Seconds())
	return out, snap, err
}

func (s *AccessService) lookup(ctx context.Context, userID int64) (resolved, *policy.Snapshot, error) {
	// The key is taken before the user is read.
	snap, key, err := s.snapshot(ctx, userID)
	if err != nil {
		return resolved{}, nil, err
	}

	if v, ok := s.cache.Get(key); ok {
		metrics.RecordCacheEvent(metrics.CacheHit)
		return v, snap, nil
	}
	metrics.RecordCacheEvent(metrics.CacheMiss)

	user, err := s.Store.Users().Get(ctx, userID)
	if err != nil {
		return resolved{}, nil, err
	}

	result, agg, err := snap.Explain(user)
	if err != nil {
		return resolved{}, nil, err
	}
	out := resolved{result: result, user: user, customDeptIDs: agg.CustomDeptIDs.Sorted()}

	// Wait so the next lookup sees the entry.
	s.cache.SetWithTTL(key, out, 1, s.ttl)
	s.cache.Wait()
	return out, snap, nil
}

// Resolve returns the effective access of a user. Unknown users fail with
// store.ErrNotFound; a malformed hierarchy fails with policy.ErrCycleDetected.
func (s *AccessService) Resolve(ctx context.Context, userID int64) (policy.AccessResult, error) {
	r, _, err := s.resolve(ctx, userID)
	if err != nil {
		return policy.AccessResult{}, err
	}
	return r.result, nil
}

// Permissions returns the user's sorted permission codes.
func (s *AccessService) Permissions(ctx context.Context, userID int64) ([]string, error) {
	res, err := s.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	return res.PermissionCodes, nil
}

// Menus returns the navigation tree the user may see. Disabled users see
// nothing, not even ungated entries.
func (s *AccessService) Menus(ctx context.Context, userID int64) ([]policy.MenuNode, error) {
	r, snap, err := s.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !r.user.Status.Enabled() {
		return []policy.MenuNode{}, nil
	}
	return snap.MenuTree(r.result.Granted()), nil
}

// Scope explains the user's effective data scope.
func (s *AccessService) Scope(ctx context.Context, userID int64) (ScopeInfo, error) {
	r, _, err := s.resolve(ctx, userID)
	if err != nil {
		return ScopeInfo{}, err
	}
	return ScopeInfo{
		Result:        r.result,
		DeptID:        r.user.DeptID,
		CustomDeptIDs: r.customDeptIDs,
	}, nil
}

// Check reports whether the snapshot can currently be built. It is used by
// the readiness probe.
func (s *AccessService) Check(ctx context.Context) error {
	_, _, err := s.snapshot(ctx, 0)
	return err
}
