package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/russellpeiris/mocked/internal/apperr"
	"github.com/russellpeiris/mocked/internal/repos"
	"github.com/russellpeiris/mocked/internal/services"
)

func registration(email string) services.Registration {
	return services.Registration{
		Name: "Tester", Email: email, Address: "1 Main St", City: "Springfield",
		Region: "MD", Password: "Passw0rd!",
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := memdb(t)
	authSvc := services.NewAuthService(repos.NewUserRepo(db))

	_, err := authSvc.Register(registration("dup@example.com"))
	require.NoError(t, err)

	_, err = authSvc.Register(registration("dup@example.com"))
	require.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	// case-insensitive duplicate
	_, err = authSvc.Register(registration("DUP@example.com"))
	require.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM users`))
	require.Equal(t, 1, n)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := memdb(t)
	authSvc := services.NewAuthService(repos.NewUserRepo(db))

	u, err := authSvc.Register(registration("hash@example.com"))
	require.NoError(t, err)
	require.NotEqual(t, "Passw0rd!", u.Hash)
	require.Contains(t, u.Hash, "$2")
}

func TestLogin(t *testing.T) {
	db := memdb(t)
	authSvc := services.NewAuthService(repos.NewUserRepo(db))

	_, err := authSvc.Register(registration("login@example.com"))
	require.NoError(t, err)

	_, err = authSvc.Login("login@example.com", "wrong-password")
	require.Equal(t, apperr.CodeAuth, apperr.CodeOf(err))

	_, err = authSvc.Login("ghost@example.com", "Passw0rd!")
	require.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))

	u, err := authSvc.Login("login@example.com", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, "login@example.com", u.Email)
	require.Equal(t, "user", u.Role)
}
