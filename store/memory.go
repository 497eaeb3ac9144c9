package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/zachary-salyers1/customer-management-app/model"

	"github.com/google/uuid"
)

// MemoryStore is a map-backed Store used by tests. Values are copied on the
// way in and out so callers never share memory with the store, and individual
// operations can be forced to fail with FailOn.
type MemoryStore struct {
	mu        sync.Mutex
	customers map[string]model.Customer
	projects  map[string]model.Project
	tasks     map[string]model.Task
	failures  map[string]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[string]model.Customer),
		projects:  make(map[string]model.Project),
		tasks:     make(map[string]model.Task),
		failures:  make(map[string]error),
	}
}

// FailOn makes every subsequent call to the named operation (method name,
// e.g. "PatchCustomer") return err until cleared with FailOn(op, nil).
func (s *MemoryStore) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *MemoryStore) failure(op string) error {
	return s.failures[op]
}

func (s *MemoryStore) CreateCustomer(ctx context.Context, customer model.Customer) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateCustomer"); err != nil {
		return "", err
	}
	id := uuid.New().String()
	customer.ID = id
	customer.CustomFields = copyFields(customer.CustomFields)
	customer.Projects = nil
	s.customers[id] = customer
	return id, nil
}

func (s *MemoryStore) CustomersByOwner(ctx context.Context, userID string) ([]model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CustomersByOwner"); err != nil {
		return nil, err
	}
	customers := make([]model.Customer, 0)
	for _, customer := range s.customers {
		if customer.UserID == userID {
			customer.CustomFields = copyFields(customer.CustomFields)
			customers = append(customers, customer)
		}
	}
	return customers, nil
}

func (s *MemoryStore) PatchCustomer(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("PatchCustomer"); err != nil {
		return err
	}
	customer, ok := s.customers[id]
	if !ok {
		return fmt.Errorf("patch customer: no document %s", id)
	}
	for path, value := range fields {
		switch path {
		case "name":
			customer.Name = value.(string)
		case "companyName":
			customer.CompanyName = value.(string)
		case "email":
			customer.Email = value.(string)
		case "phone":
			customer.Phone = value.(string)
		case "jobTitle":
			customer.JobTitle = value.(string)
		case "leadType":
			customer.LeadType = value.(string)
		case "customFields":
			customer.CustomFields = copyFields(value.(map[string]string))
		case "updatedAt":
			// timestamps are not read back by any test
		default:
			return fmt.Errorf("patch customer: unknown field %q", path)
		}
	}
	s.customers[id] = customer
	return nil
}

func (s *MemoryStore) CreateProject(ctx context.Context, project model.Project) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateProject"); err != nil {
		return "", err
	}
	id := uuid.New().String()
	project.ID = id
	project.Tasks = nil
	s.projects[id] = project
	return id, nil
}

func (s *MemoryStore) ProjectsByCustomer(ctx context.Context, customerID string) ([]model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("ProjectsByCustomer"); err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0)
	for _, project := range s.projects {
		if project.CustomerID == customerID {
			projects = append(projects, project)
		}
	}
	return projects, nil
}

func (s *MemoryStore) CreateTask(ctx context.Context, task model.Task) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("CreateTask"); err != nil {
		return "", err
	}
	id := uuid.New().String()
	task.ID = id
	s.tasks[id] = task
	return id, nil
}

func (s *MemoryStore) TasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("TasksByProject"); err != nil {
		return nil, err
	}
	tasks := make([]model.Task, 0)
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

func (s *MemoryStore) PatchTask(ctx context.Context, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("PatchTask"); err != nil {
		return err
	}
	task, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("patch task: no document %s", id)
	}
	for path, value := range fields {
		switch path {
		case "name":
			task.Name = value.(string)
		case "description":
			task.Description = value.(string)
		case "notes":
			task.Notes = value.(string)
		case "status":
			task.Status = value.(string)
		case "priority":
			task.Priority = value.(string)
		case "updatedAt":
		default:
			return fmt.Errorf("patch task: unknown field %q", path)
		}
	}
	s.tasks[id] = task
	return nil
}

func (s *MemoryStore) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("DeleteTask"); err != nil {
		return err
	}
	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("delete task: no document %s", id)
	}
	delete(s.tasks, id)
	return nil
}

func copyFields(fields map[string]string) map[string]string {
	if fields == nil {
		return nil
	}
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
