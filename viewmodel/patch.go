package viewmodel

import "github.com/zachary-salyers1/customer-management-app/model"

// CustomerPatch is a shallow merge of the customer's display fields; nil
// members are untouched. The custom-fields map is replaced as a whole, the
// way the edit form submits it.
type CustomerPatch struct {
	Name         *string
	CompanyName  *string
	Email        *string
	Phone        *string
	JobTitle     *string
	LeadType     *string
	CustomFields *map[string]string
}

func (p CustomerPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.CompanyName != nil {
		fields["companyName"] = *p.CompanyName
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.Phone != nil {
		fields["phone"] = *p.Phone
	}
	if p.JobTitle != nil {
		fields["jobTitle"] = *p.JobTitle
	}
	if p.LeadType != nil {
		fields["leadType"] = *p.LeadType
	}
	if p.CustomFields != nil {
		fields["customFields"] = *p.CustomFields
	}
	return fields
}

func (p CustomerPatch) apply(customer *model.Customer) {
	if p.Name != nil {
		customer.Name = *p.Name
	}
	if p.CompanyName != nil {
		customer.CompanyName = *p.CompanyName
	}
	if p.Email != nil {
		customer.Email = *p.Email
	}
	if p.Phone != nil {
		customer.Phone = *p.Phone
	}
	if p.JobTitle != nil {
		customer.JobTitle = *p.JobTitle
	}
	if p.LeadType != nil {
		customer.LeadType = *p.LeadType
	}
	if p.CustomFields != nil {
		fields := make(map[string]string, len(*p.CustomFields))
		for k, v := range *p.CustomFields {
			fields[k] = v
		}
		customer.CustomFields = fields
	}
}

// TaskPatch mirrors the task edit form. Status is deliberately unrestricted:
// the form may move a completed task back to todo.
type TaskPatch struct {
	Name        *string
	Description *string
	Notes       *string
	Status      *string
	Priority    *string
}

func (p TaskPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.Notes != nil {
		fields["notes"] = *p.Notes
	}
	if p.Status != nil {
		fields["status"] = *p.Status
	}
	if p.Priority != nil {
		fields["priority"] = *p.Priority
	}
	return fields
}

func (p TaskPatch) apply(task *model.Task) {
	if p.Name != nil {
		task.Name = *p.Name
	}
	if p.Description != nil {
		task.Description = *p.Description
	}
	if p.Notes != nil {
		task.Notes = *p.Notes
	}
	if p.Status != nil {
		task.Status = *p.Status
	}
	if p.Priority != nil {
		task.Priority = *p.Priority
	}
}
