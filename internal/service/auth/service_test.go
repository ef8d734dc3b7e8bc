package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	accountRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/account"
	"github.com/m04kA/wedding-reservation-service/internal/service/auth/models"
	"github.com/m04kA/wedding-reservation-service/pkg/authtoken"
	"github.com/m04kA/wedding-reservation-service/pkg/logger"
)

type fakeAccounts struct {
	byEmail   map[string]*domain.Account
	getErr    error
	countErr  error
	createErr error
	created   []*domain.Account
}

func newFakeAccounts(accounts ...*domain.Account) *fakeAccounts {
	f := &fakeAccounts{byEmail: make(map[string]*domain.Account)}
	for _, a := range accounts {
		f.byEmail[a.Email] = a
	}
	return f
}

func (f *fakeAccounts) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	acc, ok := f.byEmail[email]
	if !ok {
		return nil, accountRepo.ErrAccountNotFound
	}
	return acc, nil
}

func (f *fakeAccounts) CountByRole(_ context.Context, role domain.Role) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	count := 0
	for _, a := range f.byEmail {
		if a.Role == role {
			count++
		}
	}
	return count, nil
}

func (f *fakeAccounts) Create(_ context.Context, acc *domain.Account) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	acc.ID = int64(len(f.byEmail) + 1)
	f.byEmail[acc.Email] = acc
	f.created = append(f.created, acc)
	return acc.ID, nil
}

type loginCounter map[string]int

func (c loginCounter) IncLogin(result string) { c[result]++ }

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newService(t *testing.T, accounts *fakeAccounts) (*Service, loginCounter) {
	t.Helper()
	counter := loginCounter{}
	svc := NewService(accounts, authtoken.NewIssuer("test-secret", time.Hour), counter, logger.Nop())
	svc.hashCost = bcrypt.MinCost
	return svc, counter
}

func TestLogin_AdminSucceeds(t *testing.T) {
	accounts := newFakeAccounts(&domain.Account{
		ID: 1, Name: "Admin", Email: "admin@local",
		PasswordHash: hashPassword(t, "adminpass"), Role: domain.RoleAdmin,
	})
	svc, counter := newService(t, accounts)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: " admin@local ", Password: "adminpass"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserInfo{Name: "Admin", Email: "admin@local"}, resp.User)
	assert.Equal(t, "1", resp.Session.SubjectID)
	assert.Equal(t, domain.RoleAdmin, resp.Session.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 5*time.Second)
	assert.Equal(t, 1, counter[loginSuccess])

	session, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
	assert.Equal(t, "admin@local", session.Email)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	accounts := newFakeAccounts(&domain.Account{
		ID: 1, Email: "admin@local", PasswordHash: hashPassword(t, "adminpass"), Role: domain.RoleAdmin,
	})
	svc, counter := newService(t, accounts)

	_, errWrong := svc.Login(context.Background(), &models.LoginRequest{Email: "admin@local", Password: "nope"})
	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{Email: "ghost@local", Password: "adminpass"})

	require.ErrorIs(t, errWrong, ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
	assert.Equal(t, 2, counter[loginInvalidCredentials])
}

func TestDummyHash_IsWellFormedAtDefaultCost(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyHash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// Сравнение проходит полный расчёт и заканчивается несовпадением, а не ошибкой формата
	err = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte("adminpass"))
	assert.ErrorIs(t, err, bcrypt.ErrMismatchedHashAndPassword)
}

func TestLogin_NonAdminIsDenied(t *testing.T) {
	accounts := newFakeAccounts(&domain.Account{
		ID: 2, Email: "user@local", PasswordHash: hashPassword(t, "userpass"), Role: domain.RoleUser,
	})
	svc, counter := newService(t, accounts)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "user@local", Password: "userpass"})
	require.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 1, counter[loginAccessDenied])
}

func TestLogin_EmptyInput(t *testing.T) {
	svc, _ := newService(t, newFakeAccounts())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "", Password: "x"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.getErr = errors.New("connection refused")
	svc, counter := newService(t, accounts)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "admin@local", Password: "x"})
	require.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, counter[loginError])
}

func TestVerify_RejectsBadTokens(t *testing.T) {
	svc, _ := newService(t, newFakeAccounts())

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	foreign, _, err := authtoken.NewIssuer("other-secret", time.Hour).Issue("1", "admin@local", "admin")
	require.NoError(t, err)
	_, err = svc.Verify(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := authtoken.NewIssuer("test-secret", time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue("1", "admin@local", "admin")
	require.NoError(t, err)
	_, err = svc.Verify(expired)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSeedAdmin(t *testing.T) {
	t.Run("creates admin once", func(t *testing.T) {
		accounts := newFakeAccounts()
		svc, _ := newService(t, accounts)
		ctx := context.Background()

		require.NoError(t, svc.SeedAdmin(ctx, "Admin", "admin@local", "adminpass"))
		require.NoError(t, svc.SeedAdmin(ctx, "Admin", "admin@local", "adminpass"))

		require.Len(t, accounts.created, 1)
		created := accounts.created[0]
		assert.Equal(t, domain.RoleAdmin, created.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("adminpass")))

		resp, err := svc.Login(ctx, &models.LoginRequest{Email: "admin@local", Password: "adminpass"})
		require.NoError(t, err)
		assert.Equal(t, "Admin", resp.User.Name)
	})

	t.Run("skips without credentials", func(t *testing.T) {
		accounts := newFakeAccounts()
		svc, _ := newService(t, accounts)

		require.NoError(t, svc.SeedAdmin(context.Background(), "Admin", "admin@local", ""))
		assert.Empty(t, accounts.created)
	})

	t.Run("email owned by non-admin", func(t *testing.T) {
		accounts := newFakeAccounts()
		accounts.createErr = accountRepo.ErrEmailTaken
		svc, _ := newService(t, accounts)

		require.NoError(t, svc.SeedAdmin(context.Background(), "Admin", "admin@local", "adminpass"))
	})

	t.Run("count failure", func(t *testing.T) {
		accounts := newFakeAccounts()
		accounts.countErr = errors.New("timeout")
		svc, _ := newService(t, accounts)

		require.ErrorIs(t, svc.SeedAdmin(context.Background(), "Admin", "admin@local", "adminpass"), ErrInternal)
	})
}
