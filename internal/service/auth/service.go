package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	accountRepo "github.com/m04kA/wedding-reservation-service/internal/infra/storage/account"
	"github.com/m04kA/wedding-reservation-service/internal/service/auth/models"
	"github.com/m04kA/wedding-reservation-service/pkg/authtoken"
)

// Результаты попытки входа для метрик
const (
	loginSuccess            = "success"
	loginInvalidCredentials = "invalid_credentials"
	loginAccessDenied       = "access_denied"
	loginError              = "error"
)

// dummyHash готовый bcrypt-хэш стоимости DefaultCost, не принадлежащий ни одному аккаунту.
// С ним сравнивается пароль для неизвестного email, чтобы время ответа не выдавало существование аккаунта
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service Credential Verifier: проверка логина администратора, выпуск и проверка токенов
// Сессии на сервере не хранятся
type Service struct {
	accounts AccountRepository
	tokens   TokenIssuer
	metrics  LoginRecorder
	logger   Logger
	hashCost int
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	accounts AccountRepository,
	tokens TokenIssuer,
	metrics LoginRecorder,
	logger Logger,
) *Service {
	return &Service{
		accounts: accounts,
		tokens:   tokens,
		metrics:  metrics,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Login проверяет email и пароль и выпускает токен администратору
// Неизвестный email и неверный пароль дают одинаковую ошибку ErrInvalidCredentials
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		s.metrics.IncLogin(loginInvalidCredentials)
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	acc, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			// Сравниваем с фиктивным хэшем, чтобы время ответа не выдавало существование email
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			s.logger.Warn("Login: unknown email=%s", email)
			s.metrics.IncLogin(loginInvalidCredentials)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		s.metrics.IncLogin(loginError)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for account id=%d", acc.ID)
		s.metrics.IncLogin(loginInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	if !acc.IsAdmin() {
		s.logger.Warn("Login: account id=%d with role=%s is not admin", acc.ID, acc.Role)
		s.metrics.IncLogin(loginAccessDenied)
		return nil, ErrAccessDenied
	}

	token, claims, err := s.tokens.Issue(strconv.FormatInt(acc.ID, 10), acc.Email, string(acc.Role))
	if err != nil {
		s.logger.Error("Login: failed to issue token for account id=%d: %v", acc.ID, err)
		s.metrics.IncLogin(loginError)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%d logged in", acc.ID)
	s.metrics.IncLogin(loginSuccess)

	session := sessionFromClaims(claims)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User: models.UserInfo{
			Name:  acc.Name,
			Email: acc.Email,
		},
		Session: *session,
	}, nil
}

// Verify проверяет токен и восстанавливает из него сессию
// Роль не проверяется: это делает вызывающая сторона (Access Gate)
func (s *Service) Verify(token string) (*domain.Session, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return sessionFromClaims(claims), nil
}

// SeedAdmin создает аккаунт администратора, если ни одного ещё нет
// Повторный вызов ничего не меняет
func (s *Service) SeedAdmin(ctx context.Context, name, email, password string) error {
	count, err := s.accounts.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return fmt.Errorf("%w: SeedAdmin - count admins: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("SeedAdmin: %d admin account(s) present, skipping", count)
		return nil
	}

	if strings.TrimSpace(email) == "" || password == "" {
		s.logger.Warn("SeedAdmin: no admin account and no seed credentials configured")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return fmt.Errorf("%w: SeedAdmin - hash password: %v", ErrInternal, err)
	}

	id, err := s.accounts.Create(ctx, &domain.Account{
		Name:         name,
		Email:        strings.TrimSpace(email),
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrEmailTaken) {
			s.logger.Warn("SeedAdmin: email=%s already registered with another role", email)
			return nil
		}
		return fmt.Errorf("%w: SeedAdmin - create account: %v", ErrInternal, err)
	}

	s.logger.Info("SeedAdmin: created admin account id=%d email=%s", id, email)
	return nil
}

func sessionFromClaims(c *authtoken.Claims) *domain.Session {
	session := &domain.Session{
		SubjectID: c.Subject,
		Email:     c.Email,
		Role:      domain.Role(c.Role),
	}
	if c.IssuedAt != nil {
		session.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		session.ExpiresAt = c.ExpiresAt.Time
	}
	return session
}
