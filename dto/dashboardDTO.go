package dto

import "github.com/zachary-salyers1/customer-management-app/model"

// DashboardTask is a task annotated with the names of both ancestors so the
// dashboard can render "Project: X | Customer: Y" without another lookup.
type DashboardTask struct {
	model.Task
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	ProjectName  string `json:"projectName"`
}

type DashboardResponse struct {
	Active    []DashboardTask `json:"active"`
	Completed []DashboardTask `json:"completed"`
}
