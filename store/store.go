// Package store wraps the record store behind a small per-collection CRUD
// contract: create assigns the document id, queries are single-field equality
// filters, patches shallow-merge the given fields and fail when the id is
// absent.
package store

import (
	"context"

	"github.com/zachary-salyers1/customer-management-app/model"
)

type Store interface {
	CreateCustomer(ctx context.Context, customer model.Customer) (string, error)
	CustomersByOwner(ctx context.Context, userID string) ([]model.Customer, error)
	PatchCustomer(ctx context.Context, id string, fields map[string]interface{}) error

	CreateProject(ctx context.Context, project model.Project) (string, error)
	ProjectsByCustomer(ctx context.Context, customerID string) ([]model.Project, error)

	CreateTask(ctx context.Context, task model.Task) (string, error)
	TasksByProject(ctx context.Context, projectID string) ([]model.Task, error)
	PatchTask(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteTask(ctx context.Context, id string) error
}
