package dto

type CreateCustomerRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1,max=64"`
	LastName  string `json:"lastName"  validate:"required,min=1,max=64"`
	Email     string `json:"email"     validate:"omitempty,email"`
	Phone     string `json:"phone"     validate:"omitempty,max=32"`
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1,max=64"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=1,max=64"`
	Email     *string `json:"email"     validate:"omitempty,email"`
	Phone     *string `json:"phone"     validate:"omitempty,max=32"`
}
