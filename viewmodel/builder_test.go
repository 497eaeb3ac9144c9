package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/store"
)

func seedCustomer(t *testing.T, st *store.MemoryStore, userID, name string) string {
	t.Helper()
	id, err := st.CreateCustomer(context.Background(), model.Customer{
		UserID:   userID,
		Name:     name,
		LeadType: model.LeadTypeCold,
	})
	if err != nil {
		t.Fatalf("seed customer %s: %v", name, err)
	}
	return id
}

func seedProject(t *testing.T, st *store.MemoryStore, customerID, name string) string {
	t.Helper()
	id, err := st.CreateProject(context.Background(), model.Project{
		CustomerID: customerID,
		Name:       name,
	})
	if err != nil {
		t.Fatalf("seed project %s: %v", name, err)
	}
	return id
}

func seedTask(t *testing.T, st *store.MemoryStore, projectID, name string) string {
	t.Helper()
	id, err := st.CreateTask(context.Background(), model.Task{
		ProjectID: projectID,
		Name:      name,
		Status:    model.StatusTodo,
		Priority:  model.PriorityMedium,
	})
	if err != nil {
		t.Fatalf("seed task %s: %v", name, err)
	}
	return id
}

func TestBuildNestsByForeignKey(t *testing.T) {
	st := store.NewMemoryStore()
	acme := seedCustomer(t, st, "owner-1", "Acme")
	globex := seedCustomer(t, st, "owner-1", "Globex")
	seedCustomer(t, st, "owner-2", "NotMine")

	website := seedProject(t, st, acme, "Website")
	app := seedProject(t, st, acme, "Mobile App")
	intranet := seedProject(t, st, globex, "Intranet")

	wantTasks := map[string]string{
		seedTask(t, st, website, "Design"): website,
		seedTask(t, st, website, "Build"):  website,
		seedTask(t, st, app, "Prototype"):  app,
	}

	customers, err := Build(context.Background(), st, "owner-1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(customers))
	}

	projectsSeen := map[string]int{}
	tasksSeen := map[string]string{}
	for _, customer := range customers {
		for _, project := range customer.Projects {
			if project.CustomerID != customer.ID {
				t.Fatalf("project %s nested under wrong customer %s", project.ID, customer.ID)
			}
			projectsSeen[project.ID]++
			for _, task := range project.Tasks {
				if task.ProjectID != project.ID {
					t.Fatalf("task %s nested under wrong project %s", task.ID, project.ID)
				}
				if _, dup := tasksSeen[task.ID]; dup {
					t.Fatalf("task %s appears more than once", task.ID)
				}
				tasksSeen[task.ID] = project.ID
			}
		}
	}
	for _, id := range []string{website, app, intranet} {
		if projectsSeen[id] != 1 {
			t.Fatalf("project %s seen %d times, want 1", id, projectsSeen[id])
		}
	}
	if len(tasksSeen) != len(wantTasks) {
		t.Fatalf("expected %d tasks, got %d", len(wantTasks), len(tasksSeen))
	}
	for id, projectID := range wantTasks {
		if tasksSeen[id] != projectID {
			t.Fatalf("task %s under project %s, want %s", id, tasksSeen[id], projectID)
		}
	}
}

func TestBuildExcludesOtherOwners(t *testing.T) {
	st := store.NewMemoryStore()
	seedCustomer(t, st, "owner-1", "Mine")
	seedCustomer(t, st, "owner-2", "Theirs")

	customers, err := Build(context.Background(), st, "owner-1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(customers) != 1 || customers[0].Name != "Mine" {
		t.Fatalf("expected only the owner's customer, got %+v", customers)
	}
}

func TestBuildDefaultsEmptyCollections(t *testing.T) {
	st := store.NewMemoryStore()
	seedCustomer(t, st, "owner-1", "Acme")

	customers, err := Build(context.Background(), st, "owner-1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0].Projects == nil || len(customers[0].Projects) != 0 {
		t.Fatalf("expected non-nil empty project list, got %#v", customers[0].Projects)
	}
	if customers[0].CustomFields == nil || len(customers[0].CustomFields) != 0 {
		t.Fatalf("expected non-nil empty custom fields, got %#v", customers[0].CustomFields)
	}
}

func TestBuildNoCustomers(t *testing.T) {
	st := store.NewMemoryStore()
	customers, err := Build(context.Background(), st, "owner-1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if customers == nil || len(customers) != 0 {
		t.Fatalf("expected non-nil empty customer list, got %#v", customers)
	}
}

func TestBuildAbortsOnFetchFailure(t *testing.T) {
	st := store.NewMemoryStore()
	acme := seedCustomer(t, st, "owner-1", "Acme")
	website := seedProject(t, st, acme, "Website")
	seedTask(t, st, website, "Design")

	st.FailOn("TasksByProject", errors.New("store offline"))

	customers, err := Build(context.Background(), st, "owner-1")
	if err == nil {
		t.Fatalf("expected build to fail")
	}
	if customers != nil {
		t.Fatalf("expected no partial tree, got %#v", customers)
	}
}
