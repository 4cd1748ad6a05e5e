package domain

// Status is the enabled flag shared by departments, menus, roles and users.
type Status int

const (
	StatusDisabled Status = 0
	StatusEnabled  Status = 1
)

func (s Status) Enabled() bool { return s == StatusEnabled }

func (s Status) Valid() bool { return s == StatusDisabled || s == StatusEnabled }
