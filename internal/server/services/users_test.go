package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/docledger/internal/common"
	"github.com/dmitrijs2005/docledger/internal/dbx"
	"github.com/dmitrijs2005/docledger/internal/logging"
	"github.com/dmitrijs2005/docledger/internal/server/auth"
	"github.com/dmitrijs2005/docledger/internal/server/config"
	"github.com/dmitrijs2005/docledger/internal/server/models"
	"github.com/dmitrijs2005/docledger/internal/server/repositories/repomanager"
	usersrepo "github.com/dmitrijs2005/docledger/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakePopulator struct {
	called []string
	err    error
}

func (p *fakePopulator) PopulatePublishedDataToNewUser(ctx context.Context, username string) error {
	p.called = append(p.called, username)
	return p.err
}

func newUserService(rm repomanager.RepositoryManager, p Populator) *UserService {
	cfg := &config.Config{SecretKey: "k", AccessTokenValidityDuration: time.Hour}
	return NewUserService(rm, p, cfg, logging.Nop())
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	p := &fakePopulator{}
	s := newUserService(repomanager.NewInMemoryRepositoryManager(), p)

	u, err := s.Register(ctx, " Alice ", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.UserName)
	assert.Equal(t, common.RoleStudent, u.Role)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, []byte("pw"), u.PasswordHash)

	_, err = s.Register(ctx, "prof", "pw", common.RoleInstructor)
	require.NoError(t, err)

	assert.Equal(t, []string{"alice"}, p.called, "instructors get no catch-up copies")
}

func TestRegister_SecondInstructor(t *testing.T) {
	ctx := context.Background()
	s := newUserService(repomanager.NewInMemoryRepositoryManager(), &fakePopulator{})

	_, err := s.Register(ctx, "i1", "pw", common.RoleInstructor)
	require.NoError(t, err)

	_, err = s.Register(ctx, "i2", "pw", common.RoleInstructor)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRegister_ConcurrentInstructors(t *testing.T) {
	ctx := context.Background()
	s := newUserService(repomanager.NewInMemoryRepositoryManager(), &fakePopulator{})

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = s.Register(ctx, fmt.Sprintf("i%d", i), "pw", common.RoleInstructor)
		}()
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, common.ErrorUnauthorized)
	}
	assert.Equal(t, 1, ok)
}

func TestRegister_NormalizesRole(t *testing.T) {
	ctx := context.Background()
	p := &fakePopulator{}
	s := newUserService(repomanager.NewInMemoryRepositoryManager(), p)

	u, err := s.Register(ctx, "prof", "pw", " instructor ")
	require.NoError(t, err)
	assert.Equal(t, common.RoleInstructor, u.Role)
	assert.Empty(t, p.called)

	_, err = s.Register(ctx, "prof2", "pw", "Instructor")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	u, err = s.Register(ctx, "bob", "pw", "student")
	require.NoError(t, err)
	assert.Equal(t, common.RoleStudent, u.Role)
}

func TestRegister_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := newUserService(repomanager.NewInMemoryRepositoryManager(), &fakePopulator{})

	_, err := s.Register(ctx, "bob", "pw", "")
	require.NoError(t, err)

	_, err = s.Register(ctx, "BOB", "other", "")
	assert.ErrorIs(t, err, common.ErrorConflict)
}

func TestRegister_PopulateError(t *testing.T) {
	ctx := context.Background()
	rm := repomanager.NewInMemoryRepositoryManager()
	s := newUserService(rm, &fakePopulator{err: errBoom{}})

	u, err := s.Register(ctx, "carol", "pw", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error copying published documents: boom")
	require.NotNil(t, u)

	_, err = rm.Users(nil).GetUserByLogin(ctx, "carol")
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	rm := repomanager.NewInMemoryRepositoryManager()
	s := newUserService(rm, &fakePopulator{})
	at := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	s.now = func() time.Time { return at }

	_, err := s.Register(ctx, "dave", "secret", common.RoleInstructor)
	require.NoError(t, err)

	res, err := s.Login(ctx, "Dave", "secret")
	require.NoError(t, err)
	assert.Equal(t, common.RoleInstructor, res.Role)

	claims, err := auth.ParseToken(res.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "dave", claims.Username)
	assert.Equal(t, common.RoleInstructor, claims.Role)

	u, err := rm.Users(nil).GetUserByLogin(ctx, "dave")
	require.NoError(t, err)
	assert.Equal(t, []time.Time{at}, u.Logins)

	_, err = s.Login(ctx, "dave", "wrong")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

type failingUsersRepo struct {
	usersrepo.Repository
	err error
}

func (r *failingUsersRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	return nil, r.err
}

func (r *failingUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	return nil, r.err
}

func (r *failingUsersRepo) HasInstructor(ctx context.Context) (bool, error) {
	return false, r.err
}

type failingUsersManager struct {
	*repomanager.InMemoryRepositoryManager
	repo *failingUsersRepo
}

func (m *failingUsersManager) Users(dbx.DBTX) usersrepo.Repository { return m.repo }

func TestUserService_RepositoryErrors(t *testing.T) {
	ctx := context.Background()
	m := &failingUsersManager{
		InMemoryRepositoryManager: repomanager.NewInMemoryRepositoryManager(),
		repo:                      &failingUsersRepo{err: errBoom{}},
	}
	s := newUserService(m, &fakePopulator{})

	_, err := s.Login(ctx, "u", "pw")
	assert.ErrorIs(t, err, common.ErrorInternal)

	_, err = s.Register(ctx, "i", "pw", common.RoleInstructor)
	require.Error(t, err)
	assert.True(t, errors.As(err, new(errBoom)))
}
