package operator

import "errors"

var ErrInvalidRole = errors.New("invalid operator role")

type Role string

const (
	RoleAttendant  Role = "attendant"
	RoleSupervisor Role = "supervisor"
	RoleAdmin      Role = "admin"
)

var roleRank = map[Role]int{
	RoleAttendant:  1,
	RoleSupervisor: 2,
	RoleAdmin:      3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	want, okMin := roleRank[min]
	return ok && okMin && have >= want
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
