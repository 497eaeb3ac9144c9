package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zachary-salyers1/customer-management-app/dto"
	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/store"
	"github.com/zachary-salyers1/customer-management-app/viewmodel"

	"github.com/gin-gonic/gin"
)

func TestDashboardSplitsActiveAndCompleted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	states := viewmodel.NewManager(store.NewMemoryStore())
	state := states.For("owner-1")

	customer, err := state.CreateCustomer(ctx, model.Customer{Name: "Acme", LeadType: model.LeadTypeCold})
	if err != nil {
		t.Fatalf("create customer: %v", err)
	}
	project, err := state.CreateProject(ctx, model.Project{CustomerID: customer.ID, Name: "Website"})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	design, err := state.CreateTask(ctx, model.Task{ProjectID: project.ID, Name: "Design", Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := state.CreateTask(ctx, model.Task{ProjectID: project.ID, Name: "Build", Priority: model.PriorityMedium}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := state.CompleteTask(ctx, design.ID); err != nil {
		t.Fatalf("complete task: %v", err)
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	c.Set("userId", "owner-1")

	Dashboard(c, states)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var response dto.DashboardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(response.Active) != 1 || response.Active[0].Name != "Build" {
		t.Fatalf("unexpected active list: %+v", response.Active)
	}
	if len(response.Completed) != 1 || response.Completed[0].ID != design.ID {
		t.Fatalf("unexpected completed list: %+v", response.Completed)
	}
	if response.Completed[0].CustomerName != "Acme" || response.Completed[0].ProjectName != "Website" {
		t.Fatalf("missing ancestor names: %+v", response.Completed[0])
	}
}
