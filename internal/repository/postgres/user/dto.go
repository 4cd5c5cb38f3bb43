package user

import "time"

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Email    *string `json:"email" form:"email"`
	Password *string `json:"password" form:"password"`
	Name     *string `json:"name" form:"name"`
	Role     *string `json:"role" form:"role"`
}

// AccountView is what register and login return. It never carries the
// password hash.
type AccountView struct {
	ID        int        `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}
