package store

import (
	"context"
	"fmt"

	"github.com/zachary-salyers1/customer-management-app/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
)

const (
	customersCollection = "customers"
	projectsCollection  = "projects"
	tasksCollection     = "tasks"
)

type FirestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateCustomer(ctx context.Context, customer model.Customer) (string, error) {
	id := uuid.New().String()
	if _, err := s.client.Collection(customersCollection).Doc(id).Set(ctx, customer); err != nil {
		return "", fmt.Errorf("create customer: %w", err)
	}
	return id, nil
}

func (s *FirestoreStore) CustomersByOwner(ctx context.Context, userID string) ([]model.Customer, error) {
	query := s.client.Collection(customersCollection).Where("userId", "==", userID)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}

	customers := make([]model.Customer, 0, len(docs))
	for _, doc := range docs {
		var customer model.Customer
		if err := doc.DataTo(&customer); err != nil {
			return nil, fmt.Errorf("decode customer %s: %w", doc.Ref.ID, err)
		}
		customer.ID = doc.Ref.ID
		customers = append(customers, customer)
	}
	return customers, nil
}

func (s *FirestoreStore) PatchCustomer(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.patch(ctx, customersCollection, id, fields); err != nil {
		return fmt.Errorf("patch customer: %w", err)
	}
	return nil
}

func (s *FirestoreStore) CreateProject(ctx context.Context, project model.Project) (string, error) {
	id := uuid.New().String()
	if _, err := s.client.Collection(projectsCollection).Doc(id).Set(ctx, project); err != nil {
		return "", fmt.Errorf("create project: %w", err)
	}
	return id, nil
}

func (s *FirestoreStore) ProjectsByCustomer(ctx context.Context, customerID string) ([]model.Project, error) {
	query := s.client.Collection(projectsCollection).Where("customerId", "==", customerID)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	projects := make([]model.Project, 0, len(docs))
	for _, doc := range docs {
		var project model.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, fmt.Errorf("decode project %s: %w", doc.Ref.ID, err)
		}
		project.ID = doc.Ref.ID
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *FirestoreStore) CreateTask(ctx context.Context, task model.Task) (string, error) {
	id := uuid.New().String()
	if _, err := s.client.Collection(tasksCollection).Doc(id).Set(ctx, task); err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

func (s *FirestoreStore) TasksByProject(ctx context.Context, projectID string) ([]model.Task, error) {
	query := s.client.Collection(tasksCollection).Where("projectId", "==", projectID)
	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		var task model.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, fmt.Errorf("decode task %s: %w", doc.Ref.ID, err)
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (s *FirestoreStore) PatchTask(ctx context.Context, id string, fields map[string]interface{}) error {
	if err := s.patch(ctx, tasksCollection, id, fields); err != nil {
		return fmt.Errorf("patch task: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteTask(ctx context.Context, id string) error {
	if _, err := s.client.Collection(tasksCollection).Doc(id).Delete(ctx, firestore.Exists); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// patch uses field-path updates rather than a merged Set so that patching a
// missing document fails instead of creating it.
func (s *FirestoreStore) patch(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	_, err := s.client.Collection(collection).Doc(id).Update(ctx, updates)
	return err
}
