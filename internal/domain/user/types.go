package user

// Role is a closed set. Anything outside it is rejected at the edge, so code that holds a Role
// can switch on it exhaustively.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSupplier Role = "supplier"
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSupplier, RoleOperator:
		return true
	default:
		return false
	}
}

// OwnsCompany reports whether registration under this role creates a company record.
func (r Role) OwnsCompany() bool {
	switch r {
	case RoleSupplier:
		return true
	case RoleCustomer, RoleOperator:
		return false
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func AllRoles() []Role {
	return []Role{RoleCustomer, RoleSupplier, RoleOperator}
}
