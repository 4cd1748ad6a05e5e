package accesssdk

import "time"

// ============================================================================
// Common Types
// ============================================================================

// ErrorResponse is the body of every non-validation error.
type ErrorResponse struct {
	// Code is a stable machine readable error code (e.g., "not_found")
	Code string `json:"code"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// ValidationErrorResponse is returned when request validation fails.
type ValidationErrorResponse struct {
	// Code is always "validation_error"
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific validation errors (field name: error message)
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse represents the response from health check endpoints.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ============================================================================
// Access Types
// ============================================================================

// AccessResponse is the effective access of one user.
type AccessResponse struct {
	UserID int64 `json:"user_id"`

	// Permissions is the sorted set of granted permission codes
	Permissions []string `json:"permissions"`

	// VisibleDeptIDs is the sorted set of departments whose rows are visible
	VisibleDeptIDs []int64 `json:"visible_dept_ids"`

	// DataScope is the winning data-scope policy ("all", "dept", ...), empty
	// when the user holds no enabled role
	DataScope string `json:"data_scope,omitempty"`

	// OwnerOnly means rows are filtered by creator rather than department
	OwnerOnly bool `json:"owner_only"`

	// IncludeOwn means the user's own rows are visible in addition to
	// VisibleDeptIDs
	IncludeOwn bool `json:"include_own"`
}

// PermissionsResponse lists the caller's permission codes.
type PermissionsResponse struct {
	Permissions []string `json:"permissions"`
}

// ScopeInfo describes the caller's effective data scope.
type ScopeInfo struct {
	DataScope      int     `json:"data_scope"`
	DataScopeName  string  `json:"data_scope_name"`
	Description    string  `json:"description"`
	UserID         int64   `json:"user_id"`
	DeptID         int64   `json:"dept_id"`
	CustomDeptIDs  []int64 `json:"custom_dept_ids"`
	VisibleDeptIDs []int64 `json:"visible_dept_ids"`
}

// Route is a UI route derived from the caller's menu tree.
type Route struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Component string    `json:"component,omitempty"`
	Redirect  string    `json:"redirect,omitempty"`
	Meta      RouteMeta `json:"meta"`
	Children  []Route   `json:"children,omitempty"`
}

type RouteMeta struct {
	Title      string   `json:"title"`
	Icon       string   `json:"icon,omitempty"`
	Order      int      `json:"order"`
	HideInMenu bool     `json:"hideInMenu"`
	KeepAlive  bool     `json:"keepAlive"`
	Authority  []string `json:"authority,omitempty"`
}

// ============================================================================
// Department Types
// ============================================================================

type Department struct {
	ID        int64     `json:"id"`
	ParentID  int64     `json:"parent_id"`
	Name      string    `json:"name"`
	Leader    string    `json:"leader,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Order     int       `json:"order"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DepartmentNode is a department with its children, ordered by Order.
type DepartmentNode struct {
	Department
	Children []DepartmentNode `json:"children,omitempty"`
}

// DepartmentRequest creates or updates a department. Status defaults to
// enabled when omitted on create.
type DepartmentRequest struct {
	ParentID int64  `json:"parent_id"`
	Name     string `json:"name"`
	Leader   string `json:"leader,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Order    int    `json:"order"`
	Status   *int   `json:"status,omitempty"`
}

// ============================================================================
// Menu Types
// ============================================================================

type Menu struct {
	ID         int64     `json:"id"`
	ParentID   int64     `json:"parent_id"`
	Name       string    `json:"name"`
	Type       int       `json:"type"`
	Path       string    `json:"path,omitempty"`
	Component  string    `json:"component,omitempty"`
	Permission string    `json:"permission,omitempty"`
	Icon       string    `json:"icon,omitempty"`
	Order      int       `json:"order"`
	Status     int       `json:"status"`
	Visible    bool      `json:"visible"`
	KeepAlive  bool      `json:"keep_alive"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type MenuNode struct {
	Menu
	Children []MenuNode `json:"children,omitempty"`
}

type MenuRequest struct {
	ParentID   int64  `json:"parent_id"`
	Name       string `json:"name"`
	Type       int    `json:"type"`
	Path       string `json:"path,omitempty"`
	Component  string `json:"component,omitempty"`
	Permission string `json:"permission,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Order      int    `json:"order"`
	Status     *int   `json:"status,omitempty"`
	Visible    *bool  `json:"visible,omitempty"`
	KeepAlive  bool   `json:"keep_alive"`
}

// ============================================================================
// Role Types
// ============================================================================

type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	DataScope int       `json:"data_scope"`
	Order     int       `json:"order"`
	Status    int       `json:"status"`
	Remark    string    `json:"remark,omitempty"`
	MenuIDs   []int64   `json:"menu_ids"`
	DeptIDs   []int64   `json:"dept_ids"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListRolesResponse struct {
	Roles []Role `json:"roles"`
}

type RoleRequest struct {
	Name      string  `json:"name"`
	Code      string  `json:"code"`
	DataScope int     `json:"data_scope"`
	Order     int     `json:"order"`
	Status    *int    `json:"status,omitempty"`
	Remark    string  `json:"remark,omitempty"`
	MenuIDs   []int64 `json:"menu_ids,omitempty"`
	DeptIDs   []int64 `json:"dept_ids,omitempty"`
}

type AssignMenusRequest struct {
	MenuIDs []int64 `json:"menu_ids"`
}

type DataScopeRequest struct {
	DataScope int     `json:"data_scope"`
	DeptIDs   []int64 `json:"dept_ids,omitempty"`
}

// ============================================================================
// User Types
// ============================================================================

type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	RealName  string    `json:"real_name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	DeptID    int64     `json:"dept_id,omitempty"`
	RoleIDs   []int64   `json:"role_ids"`
	Status    int       `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	RealName string  `json:"real_name,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	Email    string  `json:"email,omitempty"`
	DeptID   int64   `json:"dept_id,omitempty"`
	RoleIDs  []int64 `json:"role_ids,omitempty"`
	Status   *int    `json:"status,omitempty"`
}

type UpdateUserRequest struct {
	RealName string `json:"real_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	DeptID   int64  `json:"dept_id,omitempty"`
}

type UserStatusRequest struct {
	Status int `json:"status"`
}

type AssignRolesRequest struct {
	RoleIDs []int64 `json:"role_ids"`
}

type ResetPasswordRequest struct {
	Password string `json:"password"`
}

// ResetPasswordResponse carries a server-generated password. It is only
// returned when the request left the password empty.
type ResetPasswordResponse struct {
	Password string `json:"password"`
}

// UserQuery filters GET /v1/users. Zero values are ignored.
type UserQuery struct {
	Username string
	RealName string
	Phone    string
	DeptID   int64
	Status   *int
	Page     int // 1-based
	Size     int
}

type ListUsersResponse struct {
	Users []User `json:"users"`
	Total int    `json:"total"`
}

// ============================================================================
// Record Types
// ============================================================================

type Record struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content,omitempty"`
	DeptID    int64     `json:"dept_id"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecordRequest creates or updates a record. DeptID defaults to the caller's
// department on create.
type RecordRequest struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	DeptID  int64  `json:"dept_id,omitempty"`
}

type RecordQuery struct {
	Title  string
	DeptID int64
	Page   int
	Size   int
}

type ListRecordsResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

// ============================================================================
// Bootstrap Types
// ============================================================================

// BootstrapRequest seeds an empty system. Departments, menus and roles
// reference each other by key.
type BootstrapRequest struct {
	Departments []SeedDepartment `json:"departments"`
	Menus       []SeedMenu       `json:"menus"`
	Roles       []SeedRole       `json:"roles"`
	Users       []SeedUser       `json:"users"`
}

type SeedDepartment struct {
	Key    string `json:"key"`
	Parent string `json:"parent,omitempty"`
	Name   string `json:"name"`
	Leader string `json:"leader,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Order  int    `json:"order,omitempty"`
}

type SeedMenu struct {
	Key        string `json:"key"`
	Parent     string `json:"parent,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Path       string `json:"path,omitempty"`
	Component  string `json:"component,omitempty"`
	Permission string `json:"permission,omitempty"`
	Icon       string `json:"icon,omitempty"`
	Order      int    `json:"order,omitempty"`
	Hidden     bool   `json:"hidden,omitempty"`
	KeepAlive  bool   `json:"keep_alive,omitempty"`
}

type SeedRole struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	DataScope   string   `json:"data_scope"`
	Menus       []string `json:"menus,omitempty"`
	Departments []string `json:"departments,omitempty"`
	Remark      string   `json:"remark,omitempty"`
}

type SeedUser struct {
	Username   string   `json:"username"`
	RealName   string   `json:"real_name,omitempty"`
	Password   string   `json:"password"`
	Department string   `json:"department,omitempty"`
	Roles      []string `json:"roles,omitempty"`
}

// BootstrapResponse reports how many rows the seed created.
type BootstrapResponse struct {
	Departments int `json:"departments"`
	Menus       int `json:"menus"`
	Roles       int `json:"roles"`
	Users       int `json:"users"`
}
