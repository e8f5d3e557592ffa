package domain

import "slices"

type PermissionItem struct {
	username    string
	permissions []string
}

func NewPermissionItem(username string, permissions []string) (PermissionItem, error) {
	if username == "" {
		return PermissionItem{}, ErrEmptyUsername
	}
	return PermissionItem{
		username:    username,
		permissions: slices.Clone(permissions),
	}, nil
}

func NewSinglePermissionItem(username string, permission string) (PermissionItem, error) {
	return NewPermissionItem(username, []string{permission})
}

func (p PermissionItem) Username() string {
	return p.username
}

func (p PermissionItem) Permissions() []string {
	return slices.Clone(p.permissions)
}

// Equals は順序を含めた値としての等価性を判定する
func (p PermissionItem) Equals(other PermissionItem) bool {
	return p.username == other.username && slices.Equal(p.permissions, other.permissions)
}
