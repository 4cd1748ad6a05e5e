package domain

import "time"

type Role struct {
	ID        int64
	Name      string
	Code      string
	DataScope DataScope
	Order     int
	Status    Status
	Remark    string
	MenuIDs   []int64
	DeptIDs   []int64 // only meaningful for DataScopeCustom
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminRoleCode is the built-in role that cannot be deleted.
const AdminRoleCode = "admin"
