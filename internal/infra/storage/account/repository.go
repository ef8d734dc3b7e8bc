package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
	"github.com/m04kA/wedding-reservation-service/pkg/dbmetrics"
	"github.com/m04kA/wedding-reservation-service/pkg/psqlbuilder"
)

const table = "users"

// Repository репозиторий учётных записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аккаунтов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает аккаунт по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "email", "phone", "password", "role", "created_at").
		From(table).
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var acc domain.Account
	var phone sql.NullString
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&acc.ID,
		&acc.Name,
		&acc.Email,
		&phone,
		&acc.PasswordHash,
		&acc.Role,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan account: %v", ErrScanRow, err)
	}

	acc.Phone = phone.String
	acc.CreatedAt = createdAt.Time

	return &acc, nil
}

// CountByRole возвращает количество аккаунтов с указанной ролью
func (r *Repository) CountByRole(ctx context.Context, role domain.Role) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"role": role}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountByRole - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByRole - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Create создает аккаунт и возвращает его ID
// PasswordHash должен быть уже захэширован
func (r *Repository) Create(ctx context.Context, acc *domain.Account) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("name", "email", "phone", "password", "role").
		Values(acc.Name, acc.Email, acc.Phone, acc.PasswordHash, acc.Role).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&acc.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return 0, ErrEmailTaken
		}
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	acc.CreatedAt = createdAt.Time

	return acc.ID, nil
}
