package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrConflict      = errors.New("store: conflict")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories so a transaction can only be started from the root,
// never from inside another transaction.
type Store interface {
	Departments() Departments
	Menus() Menus
	Roles() Roles
	Users() Users
	Records() Records

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction. The transaction is rolled back when
	// fn returns an error and committed otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Page bounds a list query. A zero Limit means no limit.
type Page struct {
	Limit  int
	Offset int
}

type UserQuery struct {
	Username string // substring match
	RealName string // substring match
	Phone    string // substring match
	DeptID   int64
	Status   *domain.Status

	// Filter restricts the rows to what the caller may see. Users are
	// partitioned by dept_id and "owned" by their own id.
	Filter policy.RowFilter
	Page
}

type RecordQuery struct {
	Title  string // substring match
	DeptID int64
	Filter policy.RowFilter
	Page
}

type Departments interface {
	Get(ctx context.Context, id int64) (domain.Department, error)

	// ListAll returns every department ordered by sort order then id.
	ListAll(ctx context.Context) ([]domain.Department, error)
	ListChildren(ctx context.Context, parentID int64) ([]domain.Department, error)

	// Create inserts d and returns the assigned id.
	Create(ctx context.Context, d domain.Department) (int64, error)
	Update(ctx context.Context, d domain.Department) error
	Delete(ctx context.Context, id int64) error

	// CountUsers returns how many users are assigned to the department.
	CountUsers(ctx context.Context, id int64) (int, error)
	IsEmpty(ctx context.Context) (bool, error)
}

type Menus interface {
	Get(ctx context.Context, id int64) (domain.Menu, error)
	ListAll(ctx context.Context) ([]domain.Menu, error)
	ListChildren(ctx context.Context, parentID int64) ([]domain.Menu, error)
	Create(ctx context.Context, m domain.Menu) (int64, error)
	Update(ctx context.Context, m domain.Menu) error

	// Delete also drops the menu from every role that was granted it.
	Delete(ctx context.Context, id int64) error
}

type Roles interface {
	// Get returns the role with its menu and custom department grants loaded.
	Get(ctx context.Context, id int64) (domain.Role, error)
	GetByCode(ctx context.Context, code string) (domain.Role, error)
	ListAll(ctx context.Context) ([]domain.Role, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Role, error)

	// Create inserts r together with its menu and department grants.
	Create(ctx context.Context, r domain.Role) (int64, error)

	// Update changes the role row only; grants go through SetMenus/SetDepts.
	Update(ctx context.Context, r domain.Role) error
	Delete(ctx context.Context, id int64) error

	// SetMenus replaces the role's menu grants.
	SetMenus(ctx context.Context, roleID int64, menuIDs []int64) error

	// SetDepts replaces the role's custom department grants.
	SetDepts(ctx context.Context, roleID int64, deptIDs []int64) error

	CountUsers(ctx context.Context, roleID int64) (int, error)
	IsEmpty(ctx context.Context) (bool, error)
}

type Users interface {
	// Get returns the user with its role ids loaded.
	Get(ctx context.Context, id int64) (domain.User, error)
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// List returns one page of matching users and the total match count.
	List(ctx context.Context, q UserQuery) ([]domain.User, int, error)

	// Create inserts u together with its role assignments.
	Create(ctx context.Context, u domain.User) (int64, error)

	// Update changes profile fields and department. Password, status and
	// roles have dedicated methods.
	Update(ctx context.Context, u domain.User) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error

	// SetRoles replaces the user's role assignments.
	SetRoles(ctx context.Context, userID int64, roleIDs []int64) error
	Delete(ctx context.Context, id int64) error
	IsEmpty(ctx context.Context) (bool, error)
}

type Records interface {
	Get(ctx context.Context, id int64) (domain.Record, error)
	List(ctx context.Context, q RecordQuery) ([]domain.Record, int, error)
	Create(ctx context.Context, r domain.Record) (int64, error)
	Update(ctx context.Context, r domain.Record) error
	Delete(ctx context.Context, id int64) error
}
