package domain

import "time"

// Record is a department-partitioned business row. It exists so the
// visibility rules can be exercised end to end against real queries.
type Record struct {
	ID        int64
	Title     string
	Content   string
	DeptID    int64
	CreatedBy int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
