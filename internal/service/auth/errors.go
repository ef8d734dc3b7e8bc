package auth

import "errors"

var (
	// ErrInvalidCredentials неизвестный email или неверный пароль (намеренно неразличимы)
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrAccessDenied аккаунт существует, но не является администратором
	ErrAccessDenied = errors.New("auth: access denied")

	// ErrInvalidToken токен повреждён, просрочен или подписан чужим ключом
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrInvalidInput возвращается при пустых email или пароле
	ErrInvalidInput = errors.New("auth: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth: internal error")
)
