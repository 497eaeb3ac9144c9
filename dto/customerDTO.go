package dto

type CreateCustomerRequest struct {
	Name         string            `json:"name" binding:"required"`
	CompanyName  string            `json:"companyName"`
	Email        string            `json:"email" binding:"omitempty,email"`
	Phone        string            `json:"phone"`
	JobTitle     string            `json:"jobTitle"`
	LeadType     string            `json:"leadType" binding:"required,oneof=cold warm hot"`
	CustomFields map[string]string `json:"customFields"`
}

// UpdateCustomerRequest carries only the fields the edit form submitted;
// nil pointers are left untouched on the stored record.
type UpdateCustomerRequest struct {
	Name         *string            `json:"name"`
	CompanyName  *string            `json:"companyName"`
	Email        *string            `json:"email" binding:"omitempty,email"`
	Phone        *string            `json:"phone"`
	JobTitle     *string            `json:"jobTitle"`
	LeadType     *string            `json:"leadType" binding:"omitempty,oneof=cold warm hot"`
	CustomFields *map[string]string `json:"customFields"`
}
