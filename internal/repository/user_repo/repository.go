package user_repo

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/pkg/pass"
)

var ErrUserNotFound = errors.New("user not found")

// record — счет пользователя внутри репозитория.
// Activities создаются вместе со счетом с нулевыми суммами
type record struct {
	passwordHash string
	balance      float64
	activities   model.Activities
}

// Реализация леджера пользователей в памяти процесса.
// Один RWMutex на весь репозиторий: масштаб демо маленький,
// а блокировка убирает гонки read-modify-write между запросами
type repo struct {
	mtx   sync.RWMutex
	users map[string]*record
}

// NewUserRepository создает леджер из стартового списка счетов.
// Пароли из конфига хэшируются здесь, открытыми они нигде не хранятся
func NewUserRepository(seed []config.SeedUser) (repository.UserRepository, error) {
	users := make(map[string]*record, len(seed))
	for _, u := range seed {
		hash, err := pass.HashPassword(u.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", u.Login, err)
		}
		users[u.Login] = &record{
			passwordHash: hash,
			balance:      u.Balance,
		}
	}

	return &repo{users: users}, nil
}

// GetUserByLogin — возвращает модель пользователя (Name, PasswordHash, Balance) по логину
func (r *repo) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.users[login]
	if !ok {
		return nil, ErrUserNotFound
	}

	return &model.User{
		Name:         login,
		PasswordHash: rec.passwordHash,
		Balance:      rec.balance,
	}, nil
}

func (r *repo) Exists(_ context.Context, login string) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.users[login]
	return ok
}

// GetBalance — получение баланса пользователя по логину
func (r *repo) GetBalance(_ context.Context, login string) (float64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.users[login]
	if !ok {
		return 0, ErrUserNotFound
	}

	return rec.balance, nil
}

// AdjustBalance — применяет дельту к балансу без каких-либо проверок
// и возвращает новый баланс
func (r *repo) AdjustBalance(_ context.Context, login string, delta float64) (float64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rec, ok := r.users[login]
	if !ok {
		return 0, ErrUserNotFound
	}

	rec.balance += delta
	return rec.balance, nil
}

// RecordActivity — прибавляет сумму к накопительному счетчику категории
func (r *repo) RecordActivity(_ context.Context, login string, category model.ActivityCategory, amount float64) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	rec, ok := r.users[login]
	if !ok {
		return ErrUserNotFound
	}

	switch category {
	case model.ActivitySent:
		rec.activities.Sent += amount
	case model.ActivitySpent:
		rec.activities.Spent += amount
	case model.ActivityScamLosses:
		rec.activities.ScamLosses += amount
	case model.ActivityInvest:
		rec.activities.Invest += amount
	case model.ActivityBonus:
		rec.activities.Bonus += amount
	default:
		return fmt.Errorf("unknown activity category %q", category)
	}

	return nil
}

// Activities — возвращает копию счетчиков активности пользователя
func (r *repo) Activities(_ context.Context, login string) (model.Activities, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	rec, ok := r.users[login]
	if !ok {
		return model.Activities{}, ErrUserNotFound
	}

	return rec.activities, nil
}
