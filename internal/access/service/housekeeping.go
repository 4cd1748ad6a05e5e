package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/store"
)

// Finding is one integrity problem reported by the audit.
type Finding struct {
	Kind   string // e.g. "dept_cycle", "dangling_menu_parent"
	Entity string // department, menu, role or user
	ID     int64
	Detail string
}

// HousekeepingService periodically drops the access snapshot so writes made
// by other processes are picked up, then audits the hierarchy for problems
// the resolver would otherwise degrade around silently.
type HousekeepingService struct {
	Store    store.Store
	Access   AccessInvalidator
	Logger   *slog.Logger
	Interval time.Duration

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 10 minutes.
func NewHousekeepingService(st store.Store, access AccessInvalidator, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &HousekeepingService{
		Store:    st,
		Access:   access,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress run has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.tick()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) tick() {
	invalidateAll(s.Access)

	findings, err := s.Audit(context.Background())
	if err != nil {
		s.Logger.Error("integrity audit failed", "error", err)
		return
	}
	for _, f := range findings {
		s.Logger.Warn("integrity finding",
			slog.String("kind", f.Kind),
			slog.String("entity", f.Entity),
			slog.Int64("id", f.ID),
			slog.String("detail", f.Detail),
		)
	}
	s.Logger.Info("integrity audit completed", "findings", len(findings))
}

// Audit inspects the stored hierarchy and grants. Findings are ordered by
// entity kind then id.
func (s *HousekeepingService) Audit(ctx context.Context) ([]Finding, error) {
	depts, err := s.Store.Departments().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	menus, err := s.Store.Menus().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	roles, err := s.Store.Roles().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, _, err := s.Store.Users().List(ctx, store.UserQuery{Filter: policy.RowFilter{Unrestricted: true}})
	if err != nil {
		return nil, err
	}

	var findings []Finding

	deptIDs := make(map[int64]bool, len(depts))
	for _, d := range depts {
		deptIDs[d.ID] = true
	}
	for _, d := range depts {
		if d.ParentID != domain.RootParentID && !deptIDs[d.ParentID] {
			findings = append(findings, Finding{"dangling_dept_parent", "department", d.ID,
				fmt.Sprintf("parent %d does not exist", d.ParentID)})
		}
	}
	if _, err := policy.BuildTreeIndex(depts); errors.Is(err, policy.ErrCycleDetected) {
		findings = append(findings, Finding{Kind: "dept_cycle", Entity: "department", Detail: err.Error()})
	}

	menuParents := make(map[int64]int64, len(menus))
	for _, m := range menus {
		menuParents[m.ID] = m.ParentID
	}
	for _, m := range menus {
		if m.ParentID == domain.RootParentID {
			continue
		}
		if _, ok := menuParents[m.ParentID]; !ok {
			findings = append(findings, Finding{"dangling_menu_parent", "menu", m.ID,
				fmt.Sprintf("parent %d does not exist", m.ParentID)})
			continue
		}
		if menuOnCycle(m.ID, menuParents) {
			findings = append(findings, Finding{"menu_cycle", "menu", m.ID, "menu is its own ancestor"})
		}
	}

	roleIDs := make(map[int64]bool, len(roles))
	for _, r := range roles {
		roleIDs[r.ID] = true
		for _, id := range r.MenuIDs {
			if _, ok := menuParents[id]; !ok {
				findings = append(findings, Finding{"dangling_role_menu", "role", r.ID,
					fmt.Sprintf("menu %d does not exist", id)})
			}
		}
		for _, id := range r.DeptIDs {
			if !deptIDs[id] {
				findings = append(findings, Finding{"stale_custom_dept", "role", r.ID,
					fmt.Sprintf("department %d does not exist", id)})
			}
		}
		if r.DataScope != domain.DataScopeCustom && len(r.DeptIDs) > 0 {
			findings = append(findings, Finding{"unused_custom_depts", "role", r.ID,
				fmt.Sprintf("%d department grants ignored under %s scope", len(r.DeptIDs), r.DataScope)})
		}
	}

	for _, u := range users {
		if u.DeptID != 0 && !deptIDs[u.DeptID] {
			findings = append(findings, Finding{"dangling_user_dept", "user", u.ID,
				fmt.Sprintf("department %d does not exist", u.DeptID)})
		}
		for _, id := range u.RoleIDs {
			if !roleIDs[id] {
				findings = append(findings, Finding{"dangling_user_role", "user", u.ID,
					fmt.Sprintf("role %d does not exist", id)})
			}
		}
	}

	return findings, nil
}

func menuOnCycle(id int64, parents map[int64]int64) bool {
	seen := map[int64]bool{}
	for cur := parents[id]; cur != domain.RootParentID; cur = parents[cur] {
		if cur == id {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		if _, ok := parents[cur]; !ok {
			return false
		}
	}
	return false
}
