package domain

type User struct {
	ID          string `db:"id" json:"id"`
	Email       string `db:"email" json:"email"`
	Name        string `db:"name" json:"name"`
	Address     string `db:"address" json:"address"`
	City        string `db:"city" json:"city"`
	Region      string `db:"region" json:"region"`
	Hash        string `db:"password_hash" json:"-"`
	Role        string `db:"role" json:"userRole"`
	IsActivated bool   `db:"is_activated" json:"isActivated"`
}
