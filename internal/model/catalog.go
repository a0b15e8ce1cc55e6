package model

// Menu is the top level of the fixed three-level permission catalog.
type Menu struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (Menu) TableName() string { return "menus" }

// MenuItem belongs to exactly one menu.
type MenuItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	MenuID uint `gorm:"not null;index" json:"menu_id"`
	Menu   Menu `gorm:"foreignKey:MenuID" json:"-"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (MenuItem) TableName() string { return "menu_items" }

// Privilege is the finest-grained grantable action.
type Privilege struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (Privilege) TableName() string { return "privileges" }

// MenuItemPrivilege is the catalog join declaring which privileges are
// available on a menu item, independent of any role. Status disables the
// pair at the catalog level; the pair itself is unique.
type MenuItemPrivilege struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	MenuItemID  uint      `gorm:"not null;uniqueIndex:idx_menuitem_privilege_pair" json:"menuitem_id"`
	PrivilegeID uint      `gorm:"not null;uniqueIndex:idx_menuitem_privilege_pair" json:"privilege_id"`
	Status      int       `gorm:"not null;default:1" json:"status"`
	MenuItem    MenuItem  `gorm:"foreignKey:MenuItemID" json:"-"`
	Privilege   Privilege `gorm:"foreignKey:PrivilegeID" json:"-"`
	Audit
}

func (MenuItemPrivilege) TableName() string { return "menu_item_privileges" }
