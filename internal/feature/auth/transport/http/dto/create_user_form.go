package dto

// CreateUserForm represents the /create-user form submission from the
// management page.
type CreateUserForm struct {
	Nome  string `form:"nome" binding:"required,min=4,max=20"`
	Email string `form:"email" binding:"required"`
	Senha string `form:"senha" binding:"required,min=8,max=20"`
	Area  string `form:"area" binding:"required"`
}
