package domain

// Seed describes an initial data set. Departments, menus and roles reference
// each other by their Key so a seed can be written before any IDs exist.
type Seed struct {
	Departments []SeedDepartment `yaml:"departments" json:"departments"`
	Menus       []SeedMenu       `yaml:"menus" json:"menus"`
	Roles       []SeedRole       `yaml:"roles" json:"roles"`
	Users       []SeedUser       `yaml:"users" json:"users"`
}

type SeedDepartment struct {
	Key    string `yaml:"key" json:"key"`
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Name   string `yaml:"name" json:"name"`
	Leader string `yaml:"leader,omitempty" json:"leader,omitempty"`
	Phone  string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Order  int    `yaml:"order,omitempty" json:"order,omitempty"`
}

type SeedMenu struct {
	Key        string `yaml:"key" json:"key"`
	Parent     string `yaml:"parent,omitempty" json:"parent,omitempty"`
	Name       string `yaml:"name" json:"name"`
	Type       string `yaml:"type" json:"type"` // directory, menu or button
	Path       string `yaml:"path,omitempty" json:"path,omitempty"`
	Component  string `yaml:"component,omitempty" json:"component,omitempty"`
	Permission string `yaml:"permission,omitempty" json:"permission,omitempty"`
	Icon       string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Order      int    `yaml:"order,omitempty" json:"order,omitempty"`
	Hidden     bool   `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	KeepAlive  bool   `yaml:"keep_alive,omitempty" json:"keep_alive,omitempty"`
}

type SeedRole struct {
	Code        string   `yaml:"code" json:"code"`
	Name        string   `yaml:"name" json:"name"`
	DataScope   string   `yaml:"data_scope" json:"data_scope"`
	Menus       []string `yaml:"menus,omitempty" json:"menus,omitempty"` // menu keys, "*" for all
	Departments []string `yaml:"departments,omitempty" json:"departments,omitempty"`
	Remark      string   `yaml:"remark,omitempty" json:"remark,omitempty"`
}

type SeedUser struct {
	Username   string   `yaml:"username" json:"username"`
	RealName   string   `yaml:"real_name,omitempty" json:"real_name,omitempty"`
	Password   string   `yaml:"password" json:"password"`
	Department string   `yaml:"department,omitempty" json:"department,omitempty"`
	Roles      []string `yaml:"roles,omitempty" json:"roles,omitempty"`
}
