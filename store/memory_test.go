package store

import (
	"context"
	"errors"
	"testing"

	"github.com/zachary-salyers1/customer-management-app/model"
)

func TestMemoryStorePatchMissingDocumentFails(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	if err := st.PatchCustomer(ctx, "missing", map[string]interface{}{"name": "X"}); err == nil {
		t.Fatalf("expected patch of missing customer to fail")
	}
	if err := st.PatchTask(ctx, "missing", map[string]interface{}{"status": model.StatusCompleted}); err == nil {
		t.Fatalf("expected patch of missing task to fail")
	}
	if err := st.DeleteTask(ctx, "missing"); err == nil {
		t.Fatalf("expected delete of missing task to fail")
	}
}

func TestMemoryStoreCopiesOnReadAndWrite(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	fields := map[string]string{"region": "emea"}
	id, err := st.CreateCustomer(ctx, model.Customer{UserID: "u1", Name: "Acme", CustomFields: fields})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	fields["region"] = "apac" // caller's map must not leak into the store

	customers, err := st.CustomersByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != id {
		t.Fatalf("unexpected result: %+v", customers)
	}
	if customers[0].CustomFields["region"] != "emea" {
		t.Fatalf("store shares memory with caller: %#v", customers[0].CustomFields)
	}

	customers[0].CustomFields["region"] = "na" // returned map must not alias the store
	again, err := st.CustomersByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if again[0].CustomFields["region"] != "emea" {
		t.Fatalf("store returned aliased map")
	}
}

func TestMemoryStoreFailOn(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	st.FailOn("CreateCustomer", boom)
	if _, err := st.CreateCustomer(ctx, model.Customer{UserID: "u1"}); !errors.Is(err, boom) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	st.FailOn("CreateCustomer", nil)
	if _, err := st.CreateCustomer(ctx, model.Customer{UserID: "u1"}); err != nil {
		t.Fatalf("expected cleared failure, got %v", err)
	}
}
