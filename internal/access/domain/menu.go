package domain

import "time"

type MenuType int

const (
	MenuTypeDirectory MenuType = 0
	MenuTypeMenu      MenuType = 1
	MenuTypeButton    MenuType = 2
)

func (t MenuType) Valid() bool {
	return t == MenuTypeDirectory || t == MenuTypeMenu || t == MenuTypeButton
}

func (t MenuType) String() string {
	switch t {
	case MenuTypeDirectory:
		return "directory"
	case MenuTypeMenu:
		return "menu"
	case MenuTypeButton:
		return "button"
	default:
		return "unknown"
	}
}

type Menu struct {
	ID             int64
	ParentID       int64
	Name           string
	Type           MenuType
	Path           string
	Component      string
	PermissionCode string // empty means ungated
	Icon           string
	Order          int
	Status         Status
	Visible        bool
	KeepAlive      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
