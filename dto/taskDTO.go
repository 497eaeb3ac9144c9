package dto

type CreateTaskRequest struct {
	ProjectID   string `json:"projectId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
	Priority    string `json:"priority" binding:"required,oneof=low medium high"`
}

// UpdateTaskRequest is a partial edit; the status field accepts any of the
// three values, including moving a completed task back to todo.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Notes       *string `json:"notes"`
	Status      *string `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}
