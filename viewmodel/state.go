package viewmodel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/store"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
)

// taskRef locates a task's ancestors without walking the tree. Tasks only
// carry a project foreign key in storage, so the index is the only O(1) way
// back to the owning customer.
type taskRef struct {
	customerID string
	projectID  string
}

// State is the single writer for one user's view-model tree. Every mutation
// performs its store call first and edits the tree only after the call
// succeeds; a failed call leaves the tree exactly as it was.
type State struct {
	recordStore store.Store
	userID      string

	// rebuildMu keeps a second full refresh from interleaving with one
	// already in flight.
	rebuildMu sync.Mutex

	mu           sync.Mutex
	customers    []model.Customer
	projectIndex map[string]string  // project id -> customer id
	taskIndex    map[string]taskRef // task id -> ancestors
}

func NewState(recordStore store.Store, userID string) *State {
	return &State{
		recordStore:  recordStore,
		userID:       userID,
		customers:    []model.Customer{},
		projectIndex: map[string]string{},
		taskIndex:    map[string]taskRef{},
	}
}

// Rebuild replaces the tree with a fresh build from the store. On failure the
// previous tree is kept.
func (s *State) Rebuild(ctx context.Context) error {
	s.rebuildMu.Lock()
	defer s.rebuildMu.Unlock()

	customers, err := Build(ctx, s.recordStore, s.userID)
	if err != nil {
		return err
	}

	projectIndex := map[string]string{}
	taskIndex := map[string]taskRef{}
	for _, customer := range customers {
		for _, project := range customer.Projects {
			projectIndex[project.ID] = customer.ID
			for _, task := range project.Tasks {
				taskIndex[task.ID] = taskRef{customerID: customer.ID, projectID: project.ID}
			}
		}
	}

	s.mu.Lock()
	s.customers = customers
	s.projectIndex = projectIndex
	s.taskIndex = taskIndex
	s.mu.Unlock()
	return nil
}

// Snapshot returns a deep copy of the tree so callers can render or serialize
// it without holding the state lock.
func (s *State) Snapshot() []model.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := make([]model.Customer, len(s.customers))
	for i, customer := range s.customers {
		customers[i] = snapshotCustomer(customer)
	}
	return customers
}

func (s *State) CreateCustomer(ctx context.Context, customer model.Customer) (model.Customer, error) {
	customer.UserID = s.userID
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt
	if customer.CustomFields == nil {
		customer.CustomFields = map[string]string{}
	}

	id, err := s.recordStore.CreateCustomer(ctx, customer)
	if err != nil {
		return model.Customer{}, err
	}
	customer.ID = id
	customer.Projects = []model.Project{}

	s.mu.Lock()
	s.customers = append(s.customers, customer)
	s.mu.Unlock()
	return customer, nil
}

func (s *State) UpdateCustomer(ctx context.Context, id string, patch CustomerPatch) (model.Customer, error) {
	s.mu.Lock()
	customer := s.findCustomer(id)
	if customer == nil {
		s.mu.Unlock()
		return model.Customer{}, ErrCustomerNotFound
	}
	s.mu.Unlock()

	fields := patch.fields()
	if len(fields) == 0 {
		return s.customerByID(id)
	}
	fields["updatedAt"] = time.Now()
	if err := s.recordStore.PatchCustomer(ctx, id, fields); err != nil {
		return model.Customer{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	customer = s.findCustomer(id)
	if customer == nil {
		return model.Customer{}, ErrCustomerNotFound
	}
	patch.apply(customer)
	return snapshotCustomer(*customer), nil
}

func (s *State) CreateProject(ctx context.Context, project model.Project) (model.Project, error) {
	s.mu.Lock()
	owner := s.findCustomer(project.CustomerID)
	if owner == nil {
		s.mu.Unlock()
		return model.Project{}, ErrCustomerNotFound
	}
	s.mu.Unlock()

	project.CreatedAt = time.Now()
	id, err := s.recordStore.CreateProject(ctx, project)
	if err != nil {
		return model.Project{}, err
	}
	project.ID = id
	project.Tasks = []model.Task{}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner = s.findCustomer(project.CustomerID)
	if owner == nil {
		return model.Project{}, ErrCustomerNotFound
	}
	owner.Projects = append(owner.Projects, project)
	s.projectIndex[id] = owner.ID
	return project, nil
}

func (s *State) CreateTask(ctx context.Context, task model.Task) (model.Task, error) {
	s.mu.Lock()
	customerID, ok := s.projectIndex[task.ProjectID]
	s.mu.Unlock()
	if !ok {
		return model.Task{}, ErrProjectNotFound
	}

	// New tasks always start at todo regardless of what the caller sent.
	task.Status = model.StatusTodo
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	id, err := s.recordStore.CreateTask(ctx, task)
	if err != nil {
		return model.Task{}, err
	}
	task.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.findProject(customerID, task.ProjectID)
	if project == nil {
		return model.Task{}, ErrProjectNotFound
	}
	project.Tasks = append(project.Tasks, task)
	s.taskIndex[id] = taskRef{customerID: customerID, projectID: task.ProjectID}
	return task, nil
}

// CompleteTask patches only the status field. Completing an already completed
// task is a no-op beyond rewriting the same status.
func (s *State) CompleteTask(ctx context.Context, id string) (model.Task, error) {
	s.mu.Lock()
	ref, ok := s.taskIndex[id]
	s.mu.Unlock()
	if !ok {
		return model.Task{}, ErrTaskNotFound
	}

	fields := map[string]interface{}{"status": model.StatusCompleted}
	if err := s.recordStore.PatchTask(ctx, id, fields); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.findTask(ref, id)
	if task == nil {
		return model.Task{}, ErrTaskNotFound
	}
	task.Status = model.StatusCompleted
	return *task, nil
}

func (s *State) UpdateTask(ctx context.Context, id string, patch TaskPatch) (model.Task, error) {
	s.mu.Lock()
	ref, ok := s.taskIndex[id]
	s.mu.Unlock()
	if !ok {
		return model.Task{}, ErrTaskNotFound
	}

	fields := patch.fields()
	if len(fields) == 0 {
		return s.taskByID(id)
	}
	fields["updatedAt"] = time.Now()
	if err := s.recordStore.PatchTask(ctx, id, fields); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	task := s.findTask(ref, id)
	if task == nil {
		return model.Task{}, ErrTaskNotFound
	}
	patch.apply(task)
	return *task, nil
}

func (s *State) DeleteTask(ctx context.Context, id string) error {
	s.mu.Lock()
	ref, ok := s.taskIndex[id]
	s.mu.Unlock()
	if !ok {
		return ErrTaskNotFound
	}

	if err := s.recordStore.DeleteTask(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	project := s.findProject(ref.customerID, ref.projectID)
	if project != nil {
		for i, task := range project.Tasks {
			if task.ID == id {
				project.Tasks = append(project.Tasks[:i], project.Tasks[i+1:]...)
				break
			}
		}
	}
	delete(s.taskIndex, id)
	return nil
}

func (s *State) customerByID(id string) (model.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer := s.findCustomer(id)
	if customer == nil {
		return model.Customer{}, ErrCustomerNotFound
	}
	return snapshotCustomer(*customer), nil
}

func (s *State) taskByID(id string) (model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ref, ok := s.taskIndex[id]
	if !ok {
		return model.Task{}, ErrTaskNotFound
	}
	task := s.findTask(ref, id)
	if task == nil {
		return model.Task{}, ErrTaskNotFound
	}
	return *task, nil
}

// callers hold s.mu
func (s *State) findCustomer(id string) *model.Customer {
	for i := range s.customers {
		if s.customers[i].ID == id {
			return &s.customers[i]
		}
	}
	return nil
}

func (s *State) findProject(customerID, projectID string) *model.Project {
	customer := s.findCustomer(customerID)
	if customer == nil {
		return nil
	}
	for i := range customer.Projects {
		if customer.Projects[i].ID == projectID {
			return &customer.Projects[i]
		}
	}
	return nil
}

func (s *State) findTask(ref taskRef, id string) *model.Task {
	project := s.findProject(ref.customerID, ref.projectID)
	if project == nil {
		return nil
	}
	for i := range project.Tasks {
		if project.Tasks[i].ID == id {
			return &project.Tasks[i]
		}
	}
	return nil
}

func snapshotCustomer(customer model.Customer) model.Customer {
	fields := make(map[string]string, len(customer.CustomFields))
	for k, v := range customer.CustomFields {
		fields[k] = v
	}
	customer.CustomFields = fields

	projects := make([]model.Project, len(customer.Projects))
	for i, project := range customer.Projects {
		tasks := make([]model.Task, len(project.Tasks))
		copy(tasks, project.Tasks)
		project.Tasks = tasks
		projects[i] = project
	}
	customer.Projects = projects
	return customer
}
