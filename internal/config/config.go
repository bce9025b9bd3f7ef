package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type AuthConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

// GameConfig — игровые константы и стартовое наполнение леджера.
// Фиксируются один раз на старте процесса
type GameConfig interface {
	ScamPrinceOdds() float64
	NPCRevengeOdds() float64
	NPCCooldown() time.Duration
	SeedUsers() []SeedUser
	SeedNPCs() []SeedNPC
}

// SeedUser — стартовый счет пользователя. Пароль хранится открытым
// только в конфиге демо и хэшируется при создании репозитория
type SeedUser struct {
	Login    string  `yaml:"login"`
	Password string  `yaml:"password"`
	Balance  float64 `yaml:"balance"`
}

type SeedNPC struct {
	Name    string  `yaml:"name"`
	Balance float64 `yaml:"balance"`
}
