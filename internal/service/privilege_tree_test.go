package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backend/internal/service"
)

func TestBuildPrivilegeTree(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, service.BuildPrivilegeTree(nil))
	})

	t.Run("groups by menu then menu item", func(t *testing.T) {
		rows := []service.GrantRow{
			{MenuID: 1, MenuName: "Admin", MenuItemID: 10, MenuItemName: "Users", PrivilegeID: 100, PrivilegeName: "View", Status: 1},
			{MenuID: 1, MenuName: "Admin", MenuItemID: 10, MenuItemName: "Users", PrivilegeID: 101, PrivilegeName: "Edit", Status: 1},
			{MenuID: 1, MenuName: "Admin", MenuItemID: 11, MenuItemName: "Roles", PrivilegeID: 100, PrivilegeName: "View", Status: 0},
			{MenuID: 2, MenuName: "Sales", MenuItemID: 20, MenuItemName: "Orders", PrivilegeID: 100, PrivilegeName: "View", Status: 1},
		}

		tree := service.BuildPrivilegeTree(rows)
		require.Len(t, tree, 2)

		admin := tree[0]
		assert.Equal(t, uint(1), admin.ID)
		assert.Equal(t, "Admin", admin.MenuName)
		require.Len(t, admin.MenuItems, 2)
		assert.Equal(t, "Users", admin.MenuItems[0].Name)
		require.Len(t, admin.MenuItems[0].Privileges, 2)
		assert.Equal(t, "Edit", admin.MenuItems[0].Privileges[1].Name)
		assert.Equal(t, 0, admin.MenuItems[1].Privileges[0].Status)

		sales := tree[1]
		assert.Equal(t, "Sales", sales.MenuName)
		require.Len(t, sales.MenuItems, 1)
	})

	t.Run("first seen order is preserved", func(t *testing.T) {
		rows := []service.GrantRow{
			{MenuID: 5, MenuName: "B", MenuItemID: 50, MenuItemName: "x", PrivilegeID: 1, PrivilegeName: "p"},
			{MenuID: 3, MenuName: "A", MenuItemID: 30, MenuItemName: "y", PrivilegeID: 1, PrivilegeName: "p"},
			{MenuID: 5, MenuName: "B", MenuItemID: 51, MenuItemName: "z", PrivilegeID: 1, PrivilegeName: "p"},
		}

		tree := service.BuildPrivilegeTree(rows)
		require.Len(t, tree, 2)
		assert.Equal(t, "B", tree[0].MenuName)
		assert.Equal(t, "A", tree[1].MenuName)
		require.Len(t, tree[0].MenuItems, 2)
	})

	t.Run("menus sharing a localized name stay distinct", func(t *testing.T) {
		rows := []service.GrantRow{
			{MenuID: 1, MenuName: "Same", MenuItemID: 10, MenuItemName: "a", PrivilegeID: 1, PrivilegeName: "p"},
			{MenuID: 2, MenuName: "Same", MenuItemID: 20, MenuItemName: "b", PrivilegeID: 1, PrivilegeName: "p"},
		}

		tree := service.BuildPrivilegeTree(rows)
		require.Len(t, tree, 2)
		assert.Equal(t, uint(1), tree[0].ID)
		assert.Equal(t, uint(2), tree[1].ID)
	})
}
