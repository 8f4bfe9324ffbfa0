package repos

import (
	"github.com/jmoiron/sqlx"

	"github.com/russellpeiris/mocked/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = `id,email,name,address,city,region,password_hash,role,is_activated`

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT `+userCols+` FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error {
	_, err := r.DB.Exec(`
		INSERT INTO users(id,email,name,address,city,region,password_hash,role,is_activated)
		VALUES(?,?,?,?,?,?,?,?,?)
	`, u.ID, u.Email, u.Name, u.Address, u.City, u.Region, u.Hash, u.Role, u.IsActivated)
	return err
}
