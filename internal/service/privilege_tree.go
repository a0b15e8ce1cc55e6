package service

// GrantRow is one flattened catalog/grant join row, already localized.
type GrantRow struct {
	MenuID        uint
	MenuName      string
	MenuItemID    uint
	MenuItemName  string
	PrivilegeID   uint
	PrivilegeName string
	Status        int
}

// PrivilegeEntry is a leaf of the assembled tree.
type PrivilegeEntry struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Status int    `json:"status"`
}

// MenuItemNode groups the privileges available on one menu item.
type MenuItemNode struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Privileges []PrivilegeEntry `json:"privileges"`
}

// MenuNode is the top level of the permission tree returned to the UI.
type MenuNode struct {
	ID        uint           `json:"id"`
	MenuName  string         `json:"menuName"`
	MenuItems []MenuItemNode `json:"menuItems"`
}

// BuildPrivilegeTree reshapes flat join rows into the nested
// menu → menu item → privilege structure, preserving first-seen order.
// Grouping is keyed by id, so two menus sharing a display name in one
// language stay distinct; the localized name rides along as payload.
func BuildPrivilegeTree(rows []GrantRow) []MenuNode {
	var menus []MenuNode
	menuIndex := make(map[uint]int)
	itemIndex := make(map[uint]map[uint]int)

	for _, row := range rows {
		mi, ok := menuIndex[row.MenuID]
		if !ok {
			mi = len(menus)
			menuIndex[row.MenuID] = mi
			itemIndex[row.MenuID] = make(map[uint]int)
			menus = append(menus, MenuNode{ID: row.MenuID, MenuName: row.MenuName})
		}

		ii, ok := itemIndex[row.MenuID][row.MenuItemID]
		if !ok {
			ii = len(menus[mi].MenuItems)
			itemIndex[row.MenuID][row.MenuItemID] = ii
			menus[mi].MenuItems = append(menus[mi].MenuItems, MenuItemNode{
				ID:   row.MenuItemID,
				Name: row.MenuItemName,
			})
		}

		menus[mi].MenuItems[ii].Privileges = append(menus[mi].MenuItems[ii].Privileges, PrivilegeEntry{
			ID:     row.PrivilegeID,
			Name:   row.PrivilegeName,
			Status: row.Status,
		})
	}

	return menus
}
