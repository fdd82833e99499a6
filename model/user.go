package model

import "time"

type User struct {
	UserID    string    `firestore:"userid,omitempty"`
	Name      string    `firestore:"name,omitempty"`
	Email     string    `firestore:"email,omitempty"`
	Password  string    `firestore:"password,omitempty"`
	Avatar    string    `firestore:"avatar,omitempty"`
	Phone     string    `firestore:"phone,omitempty"`
	Timezone  string    `firestore:"timezone,omitempty"`
	Role      string    `firestore:"role,omitempty"` // "user" or "admin"
	Active    string    `firestore:"active,omitempty"`
	CreatedAt time.Time `firestore:"createdat,omitempty"`
}
