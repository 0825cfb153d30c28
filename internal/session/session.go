package session

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
)

var (
	// ErrInvalidToken возвращается при некорректном или пустом токене
	ErrInvalidToken = errors.New("session: invalid token")

	// ErrMissingName возвращается, когда в токене нет имени профиля
	ErrMissingName = errors.New("session: token has no profile name")
)

// User аутентифицированный пользователь текущего запроса
// Создается из bearer-токена и передается явно - глобального состояния сессии нет,
// логика бронирования читает пользователя, но не управляет логином/логаутом
type User struct {
	Name  string
	Email string
	Token string // исходный токен для запросов к внешнему API
}

// tokenClaims полезная нагрузка access-токена Holidaze API
type tokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// FromToken извлекает пользователя из access-токена внешнего API.
// Подпись не проверяется: секрет известен только внешнему API, и он же
// авторизует каждый запрос - шлюзу нужна только идентичность для
// проверок владельца и прав доступа.
func FromToken(token string) (*User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	parser := jwt.NewParser()

	var claims tokenClaims
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Name == "" {
		return nil, ErrMissingName
	}

	return &User{
		Name:  claims.Name,
		Email: claims.Email,
		Token: token,
	}, nil
}

// IsAuthenticated сообщает, что пользователь аутентифицирован
func (u *User) IsAuthenticated() bool {
	return u != nil && u.Name != "" && u.Token != ""
}
