package employee

type Filter struct {
	Limit *int
	Page  *int
}

type CreateRequest struct {
	Name       *string `json:"name" form:"name"`
	Email      *string `json:"email" form:"email"`
	Password   *string `json:"password" form:"password"`
	Phone      *string `json:"phone" form:"phone"`
	Position   *string `json:"position" form:"position"`
	Department *string `json:"department" form:"department"`
	JoinDate   *string `json:"joinDate" form:"joinDate"`
	Address    *string `json:"address" form:"address"`
	Status     *string `json:"status" form:"status"`
}

type UpdateRequest struct {
	ID         int     `json:"-" form:"-"`
	Name       *string `json:"name" form:"name"`
	Email      *string `json:"email" form:"email"`
	Password   *string `json:"password" form:"password"`
	Phone      *string `json:"phone" form:"phone"`
	Position   *string `json:"position" form:"position"`
	Department *string `json:"department" form:"department"`
	JoinDate   *string `json:"joinDate" form:"joinDate"`
	Address    *string `json:"address" form:"address"`
	Status     *string `json:"status" form:"status"`
}
