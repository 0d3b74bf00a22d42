package domain

import "time"

// User is the profile of a signed-in end-user as the remote API reports it.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// AdminAccount is the back-office operator identity.
type AdminAccount struct {
	Username string
	Role     string
}
