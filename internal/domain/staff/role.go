package staff

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role of a staff member or service account calling the booking API.
type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

var roleLevel = map[Role]int{
	RoleViewer:   1,
	RoleOperator: 2,
	RoleAdmin:    3,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	_, ok := roleLevel[r]
	return ok
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	rl, ok := roleLevel[r]
	ml, okMin := roleLevel[min]
	return ok && okMin && rl >= ml
}
