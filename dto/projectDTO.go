package dto

type CreateProjectRequest struct {
	CustomerID  string `json:"customerId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
