package domain

import "time"

// Role роль аккаунта
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account учётная запись (таблица users)
type Account struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// IsAdmin returns true if the account may use the back office
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Session подтверждённая сессия, восстановленная из подписанного токена
// На сервере не хранится
type Session struct {
	SubjectID string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin returns true if the session belongs to an admin
func (s *Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
