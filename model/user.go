package model

import "time"

type User struct {
	UserID    string    `firestore:"userId,omitempty" json:"userId"`
	Name      string    `firestore:"name,omitempty" json:"name"`
	Email     string    `firestore:"email,omitempty" json:"email"`
	Profile   string    `firestore:"profile,omitempty" json:"profile"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"-"`
}
