package cooldown_repo

import (
	"context"
	"sync"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/repository"
)

// Реализация трекера кулдаунов в памяти процесса.
// Запись — момент, после которого NPC снова доступен.
// Отсутствие записи означает "доступен всегда"
type repo struct {
	mtx   sync.RWMutex
	until map[string]time.Time
}

func NewCooldownRepository() repository.CooldownRepository {
	return &repo{until: make(map[string]time.Time)}
}

// IsAvailable — true, если кулдаун не записан или уже истек к моменту now.
// Вторым значением возвращает остаток кулдауна
func (r *repo) IsAvailable(_ context.Context, target string, now time.Time) (bool, time.Duration) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	until, ok := r.until[target]
	if !ok || !until.After(now) {
		return true, 0
	}

	return false, until.Sub(now)
}

// SetCooldown — перезаписывает метку безусловно
func (r *repo) SetCooldown(_ context.Context, target string, until time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.until[target] = until
}
