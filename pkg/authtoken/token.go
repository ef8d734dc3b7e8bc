package authtoken

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken подпись, алгоритм или срок действия токена не прошли проверку
	ErrInvalidToken = errors.New("authtoken: invalid token")

	// ErrSign возвращается, если не удалось подписать токен
	ErrSign = errors.New("authtoken: failed to sign token")
)

// Claims полезная нагрузка токена сессии
// sub - ID аккаунта, email и role дублируют данные аккаунта на момент входа
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer выпускает и проверяет HS256-токены с ограниченным сроком жизни
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer создает Issuer с секретом подписи и временем жизни токена
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock подменяет источник времени (для тестов)
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// TTL время жизни выпускаемых токенов
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue подписывает новый токен для аккаунта
func (i *Issuer) Issue(subject, email, role string) (string, *Claims, error) {
	issuedAt := i.now()

	claims := &Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrSign, err)
	}

	return token, claims, nil
}

// Parse проверяет подпись и срок действия токена и возвращает его claims
func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
