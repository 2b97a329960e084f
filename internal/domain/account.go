package domain

type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "administrator"
)

// ParseRole maps a persisted role string to a Role. The legacy "admin" value
// is an administrator; anything else is a regular account.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAdmin), "admin":
		return RoleAdmin
	default:
		return RoleRegular
	}
}

type Account struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthDate string `json:"birth_date"`
	Email     string `json:"email"`
	Login     string `json:"login"`
	Password  string `json:"password"`
	Address   string `json:"address"`
	Role      Role   `json:"role"`
}

func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Registration carries the fields of a sign-up form. RepeatPassword is never
// persisted.
type Registration struct {
	FirstName      string `label:"first name" validate:"required"`
	LastName       string `label:"last name" validate:"required"`
	BirthDate      string `label:"birth date"`
	Email          string `label:"email" validate:"required"`
	Login          string `label:"login" validate:"required"`
	Password       string `label:"password" validate:"required"`
	RepeatPassword string `label:"repeat password" validate:"required"`
	Address        string `label:"delivery address" validate:"required"`
}

func (r Registration) Account() Account {
	return Account{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		BirthDate: r.BirthDate,
		Email:     r.Email,
		Login:     r.Login,
		Password:  r.Password,
		Address:   r.Address,
		Role:      RoleRegular,
	}
}
