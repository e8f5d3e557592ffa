package domain

type User struct {
	name string
}

func NewUser(name string) (*User, error) {
	if name == "" {
		return nil, ErrEmptyUsername
	}
	return &User{
		name: name,
	}, nil
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Equals(other *User) bool {
	if u == nil {
		return other == nil
	}
	if other == nil {
		return false
	}
	return u.name == other.name
}
