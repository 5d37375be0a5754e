package dto

// UserDTO is the public user representation returned by auth endpoints.
type UserDTO struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	BaseID *uint  `json:"base_id"`
}
