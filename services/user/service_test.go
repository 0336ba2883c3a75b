package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	userRepo "roombook/database/repository/user"
	"roombook/models"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, userRepo.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, userRepo.ErrNotFound
}

func (f *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(u *models.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Update(u *models.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return userRepo.ErrNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	if _, ok := f.users[id]; !ok {
		return userRepo.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func TestRegister(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	usr, err := svc.Register(models.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, usr.ID)
	assert.Equal(t, models.RoleUser, usr.Role)
	assert.NotEqual(t, "correct horse", usr.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte("correct horse")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	_, err := svc.Register(models.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterUserRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "battery staple",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterIgnoresUnknownRole(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	usr, err := svc.Register(models.RegisterUserRequest{
		Name: "Eve", Email: "eve@example.com", Password: "secretsecret", Role: "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, usr.Role)
}

func TestAuthenticate(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	_, err := svc.Register(models.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Authenticate("ada@example.com", "correct horse")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "ada@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("ada@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("nobody@example.com", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdatePassword(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}
	usr, err := svc.Register(models.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdatePassword(usr.ID, "wrong", "new password"), ErrInvalidCredentials)

	require.NoError(t, svc.UpdatePassword(usr.ID, "correct horse", "battery staple"))
	_, err = svc.Authenticate("ada@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Authenticate("ada@example.com", "battery staple")
	assert.NoError(t, err)
}

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}
	usr, err := svc.Register(models.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct horse",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(usr.ID))
	assert.ErrorIs(t, svc.DeleteUser(usr.ID), ErrNotFound)
	_, err = svc.GetByID(usr.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
