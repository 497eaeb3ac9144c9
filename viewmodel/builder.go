// Package viewmodel owns the nested customer → project → task view of the
// flat record collections and keeps it consistent with the store as
// individual mutations are applied.
package viewmodel

import (
	"context"

	"github.com/zachary-salyers1/customer-management-app/model"
	"github.com/zachary-salyers1/customer-management-app/store"

	"golang.org/x/sync/errgroup"
)

// Build joins the three collections into one tree for the given owner.
// Sibling fetches fan out concurrently; any failure aborts the whole build so
// a partial tree never escapes. Child slices and the custom-fields map are
// always non-nil.
func Build(ctx context.Context, recordStore store.Store, userID string) ([]model.Customer, error) {
	customers, err := recordStore.CustomersByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	for i := range customers {
		i := i
		group.Go(func() error {
			projects, err := buildProjects(ctx, recordStore, customers[i].ID)
			if err != nil {
				return err
			}
			if customers[i].CustomFields == nil {
				customers[i].CustomFields = map[string]string{}
			}
			customers[i].Projects = projects
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}

func buildProjects(ctx context.Context, recordStore store.Store, customerID string) ([]model.Project, error) {
	projects, err := recordStore.ProjectsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	group, ctx := errgroup.WithContext(ctx)
	for i := range projects {
		i := i
		group.Go(func() error {
			tasks, err := recordStore.TasksByProject(ctx, projects[i].ID)
			if err != nil {
				return err
			}
			if tasks == nil {
				tasks = []model.Task{}
			}
			projects[i].Tasks = tasks
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []model.Project{}
	}
	return projects, nil
}
