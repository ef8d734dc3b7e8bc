package models

import (
	"time"

	"github.com/m04kA/wedding-reservation-service/internal/domain"
)

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo публичные данные аккаунта
type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse результат успешного входа
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	User      UserInfo       `json:"user"`
	Session   domain.Session `json:"-"`
}
