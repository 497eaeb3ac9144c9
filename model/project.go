package model

import "time"

type Project struct {
	ID          string    `firestore:"-" json:"id"`
	CustomerID  string    `firestore:"customerId,omitempty" json:"customerId"`
	Name        string    `firestore:"name,omitempty" json:"name"`
	Description string    `firestore:"description,omitempty" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt,omitempty" json:"-"`
	Tasks       []Task    `firestore:"-" json:"tasks"`
}
