package domain

import "time"

type User struct {
	ID           int64
	Username     string
	RealName     string
	Phone        string
	Email        string
	PasswordHash string // argon2 encoded
	DeptID       int64  // 0 when unassigned
	RoleIDs      []int64
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminUsername is the built-in account that cannot be deleted or disabled.
const AdminUsername = "admin"
