package model

import "time"

const (
	LeadTypeCold = "cold"
	LeadTypeWarm = "warm"
	LeadTypeHot  = "hot"
)

type Customer struct {
	ID           string            `firestore:"-" json:"id"`
	UserID       string            `firestore:"userId,omitempty" json:"userId"`
	Name         string            `firestore:"name,omitempty" json:"name"`
	CompanyName  string            `firestore:"companyName,omitempty" json:"companyName"`
	Email        string            `firestore:"email,omitempty" json:"email"`
	Phone        string            `firestore:"phone,omitempty" json:"phone"`
	JobTitle     string            `firestore:"jobTitle,omitempty" json:"jobTitle"`
	LeadType     string            `firestore:"leadType,omitempty" json:"leadType"` // "cold", "warm", "hot"
	CustomFields map[string]string `firestore:"customFields,omitempty" json:"customFields"`
	CreatedAt    time.Time         `firestore:"createdAt,omitempty" json:"-"`
	UpdatedAt    time.Time         `firestore:"updatedAt,omitempty" json:"-"`
	Projects     []Project         `firestore:"-" json:"projects"`
}
