// Package dto defines form objects for the tasks feature's HTTP transport layer.
package dto

// CreateTaskForm represents the /create-task form submission.
// Descricao is the only optional field.
type CreateTaskForm struct {
	Tarefa      string `form:"tarefa" binding:"required"`
	Responsavel string `form:"responsavel" binding:"required"`
	Frequencia  string `form:"frequencia" binding:"required"`
	Descricao   string `form:"descricao"`
}
