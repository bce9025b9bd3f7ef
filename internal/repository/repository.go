package repository

import (
	"context"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/model"
)

// UserRepository — леджер счетов пользователей и их счетчиков активности.
// AdjustBalance применяет дельту безусловно: овердрафт не проверяется,
// баланс может уходить в минус
type UserRepository interface {
	GetUserByLogin(ctx context.Context, login string) (*model.User, error)
	Exists(ctx context.Context, login string) bool

	GetBalance(ctx context.Context, login string) (float64, error)
	AdjustBalance(ctx context.Context, login string, delta float64) (float64, error)

	RecordActivity(ctx context.Context, login string, category model.ActivityCategory, amount float64) error
	Activities(ctx context.Context, login string) (model.Activities, error)
}

// NPCRepository — леджер балансов NPC для мини-игры
type NPCRepository interface {
	Names(ctx context.Context) []string
	Exists(ctx context.Context, name string) bool

	GetBalance(ctx context.Context, name string) (float64, error)
	AdjustBalance(ctx context.Context, name string, delta float64) (float64, error)
}

// CooldownRepository — метки "доступен снова после" по NPC.
// Истечение проверяется лениво при запросе, фонового таймера нет
type CooldownRepository interface {
	IsAvailable(ctx context.Context, target string, now time.Time) (bool, time.Duration)
	SetCooldown(ctx context.Context, target string, until time.Time)
}

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
