package models

import "time"

// User is owned by an external user service; this system only reads it
// to resolve purchase ownership. Rows are created by the seeder (or the
// collaborator) and never modified here.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
}
