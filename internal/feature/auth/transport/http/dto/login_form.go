// Package dto defines form objects for the auth feature's HTTP transport layer.
package dto

// LoginForm represents the /login form submission.
// It uses Gin's binding tags for validation (required, length 4-20 / 8-20).
type LoginForm struct {
	Nome  string `form:"nome" binding:"required,min=4,max=20"`
	Senha string `form:"senha" binding:"required,min=8,max=20"`
}
