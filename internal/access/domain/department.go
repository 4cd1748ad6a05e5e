package domain

import "time"

// RootParentID marks a top level department or menu.
const RootParentID int64 = 0

type Department struct {
	ID        int64
	ParentID  int64
	Name      string
	Leader    string
	Phone     string
	Order     int
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
