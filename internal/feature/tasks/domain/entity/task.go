// Package entity defines the domain entities for the tasks feature.
package entity

// Task statuses. The column is free text at the data layer; these are the
// two values the application writes.
const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Task represents an item on the task board.
type Task struct {
	// ID is the unique identifier for the task.
	ID uint `gorm:"primaryKey"`

	// Tarefa is the task description shown in the listing.
	Tarefa string `gorm:"size:100;not null"`

	// Responsavel names the responsible party. Free text, not a
	// reference to a User.
	Responsavel string `gorm:"size:50;not null"`

	// Frequencia is the recurrence label (e.g. "daily").
	Frequencia string `gorm:"size:50;not null"`

	// Descricao is an optional longer description.
	Descricao string `gorm:"size:50"`

	// Status is "pending" on creation and "done" after completion.
	Status string `gorm:"size:50"`

	// UltimaModificacao is nil until the task is completed, then holds
	// the UTC completion time truncated to the minute (16 characters).
	UltimaModificacao *string `gorm:"size:50"`
}
