package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User — счет пользователя банка.
// Баланс знаковый и без нижней границы: демо намеренно разрешает уход в минус
type User struct {
	Name         string
	PasswordHash string
	Balance      float64
}

type UserClaims struct {
	jwt.RegisteredClaims
}
