package model

import "time"

const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          string    `firestore:"-" json:"id"`
	ProjectID   string    `firestore:"projectId,omitempty" json:"projectId"`
	Name        string    `firestore:"name,omitempty" json:"name"`
	Description string    `firestore:"description,omitempty" json:"description"`
	Notes       string    `firestore:"notes,omitempty" json:"notes"`
	Status      string    `firestore:"status,omitempty" json:"status"`     // "todo", "in-progress", "completed"
	Priority    string    `firestore:"priority,omitempty" json:"priority"` // "low", "medium", "high"
	CreatedAt   time.Time `firestore:"createdAt,omitempty" json:"-"`
	UpdatedAt   time.Time `firestore:"updatedAt,omitempty" json:"-"`
}
