package npc_repo

import (
	"context"
	"errors"
	"sync"

	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/repository"
)

var ErrNPCNotFound = errors.New("npc not found")

// Реализация леджера NPC в памяти процесса.
// order сохраняет порядок из конфига, чтобы /api/npcs
// отдавал список стабильно
type repo struct {
	mtx      sync.RWMutex
	balances map[string]float64
	order    []string
}

func NewNPCRepository(seed []config.SeedNPC) repository.NPCRepository {
	balances := make(map[string]float64, len(seed))
	order := make([]string, 0, len(seed))
	for _, npc := range seed {
		balances[npc.Name] = npc.Balance
		order = append(order, npc.Name)
	}

	return &repo{
		balances: balances,
		order:    order,
	}
}

func (r *repo) Names(_ context.Context) []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

func (r *repo) Exists(_ context.Context, name string) bool {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	_, ok := r.balances[name]
	return ok
}

func (r *repo) GetBalance(_ context.Context, name string) (float64, error) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	balance, ok := r.balances[name]
	if !ok {
		return 0, ErrNPCNotFound
	}

	return balance, nil
}

// AdjustBalance — применяет дельту безусловно, баланс NPC может уйти в минус
func (r *repo) AdjustBalance(_ context.Context, name string, delta float64) (float64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	balance, ok := r.balances[name]
	if !ok {
		return 0, ErrNPCNotFound
	}

	balance += delta
	r.balances[name] = balance
	return balance, nil
}
