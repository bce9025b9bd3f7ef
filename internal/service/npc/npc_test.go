package npc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/internal/repository/cooldown_repo"
	"github.com/Starley-iggy/YahooBank/internal/repository/npc_repo"
	"github.com/Starley-iggy/YahooBank/internal/repository/user_repo"
	"github.com/Starley-iggy/YahooBank/internal/service"
)

// uniformCall — границы, с которыми сервис запросил Uniform
type uniformCall struct {
	min, max float64
}

// scriptedRand отдает заранее заданные значения по очереди
// и запоминает запрошенные границы для проверки в тестах
type scriptedRand struct {
	floats       []float64
	uniforms     []float64
	uniformCalls []uniformCall
}

func (r *scriptedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) Uniform(min, max float64) float64 {
	r.uniformCalls = append(r.uniformCalls, uniformCall{min: min, max: max})
	v := r.uniforms[0]
	r.uniforms = r.uniforms[1:]
	return v
}

type fakeGameCfg struct{}

func (c *fakeGameCfg) ScamPrinceOdds() float64      { return 0.05 }
func (c *fakeGameCfg) NPCRevengeOdds() float64      { return 0.05 }
func (c *fakeGameCfg) NPCCooldown() time.Duration   { return 30 * time.Second }
func (c *fakeGameCfg) SeedUsers() []config.SeedUser { return nil }
func (c *fakeGameCfg) SeedNPCs() []config.SeedNPC   { return nil }

type testEnv struct {
	serv         service.NPCService
	userRepo     repository.UserRepository
	npcRepo      repository.NPCRepository
	cooldownRepo repository.CooldownRepository
}

func newTestEnv(t *testing.T, rnd service.Rand) *testEnv {
	t.Helper()

	userRepo, err := user_repo.NewUserRepository([]config.SeedUser{
		{Login: "alex", Password: "1234", Balance: 2500.00},
	})
	require.NoError(t, err)

	npcRepo := npc_repo.NewNPCRepository([]config.SeedNPC{
		{Name: "merchant", Balance: 50000},
		{Name: "old_lady", Balance: 2000},
	})
	cooldownRepo := cooldown_repo.NewCooldownRepository()

	return &testEnv{
		serv:         NewNPCService(npcRepo, userRepo, cooldownRepo, &fakeGameCfg{}, rnd),
		userRepo:     userRepo,
		npcRepo:      npcRepo,
		cooldownRepo: cooldownRepo,
	}
}

func authedCtx(username string) context.Context {
	return middleware.UsernameToContext(context.Background(), username)
}

func TestList(t *testing.T) {
	env := newTestEnv(t, &scriptedRand{})

	assert.Equal(t, []string{"merchant", "old_lady"}, env.serv.List(context.Background()))
}

func TestAttempt_UnknownTarget(t *testing.T) {
	env := newTestEnv(t, &scriptedRand{})

	_, err := env.serv.Attempt(authedCtx("alex"), model.HeistAttempt{Target: "dragon", Success: true})
	assert.ErrorIs(t, err, service.ErrUnknownTarget)
}

func TestAttempt_NotAuthenticated(t *testing.T) {
	env := newTestEnv(t, &scriptedRand{})

	_, err := env.serv.Attempt(context.Background(), model.HeistAttempt{Target: "merchant"})
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestAttempt_RevengeIgnoresSuccessFlag(t *testing.T) {
	// Ролл мести проходит раньше ветки по флагу success
	rnd := &scriptedRand{floats: []float64{0.01}, uniforms: []float64{400}}
	env := newTestEnv(t, rnd)
	ctx := authedCtx("alex")

	result, err := env.serv.Attempt(ctx, model.HeistAttempt{Target: "old_lady", Success: true})
	require.NoError(t, err)

	// Сумма мести тянется из [100, 1000]
	assert.Equal(t, []uniformCall{{min: 100, max: 1000}}, rnd.uniformCalls)

	assert.Equal(t, model.HeistRevenge, result.Outcome)
	assert.Equal(t, "The old lady got suspicious and REVENGED you for €400.00!", result.Message)
	assert.InDelta(t, 2100.00, result.Balance, 1e-9)

	// Баланс NPC не тронут, кулдаун не поставлен
	npcBalance, err := env.npcRepo.GetBalance(ctx, "old_lady")
	require.NoError(t, err)
	assert.InDelta(t, 2000, npcBalance, 1e-9)

	available, _ := env.cooldownRepo.IsAvailable(ctx, "old_lady", time.Now())
	assert.True(t, available)

	activities, err := env.userRepo.Activities(ctx, "alex")
	require.NoError(t, err)
	assert.InDelta(t, 400, activities.ScamLosses, 1e-9)
}

func TestAttempt_Success(t *testing.T) {
	rnd := &scriptedRand{floats: []float64{0.9}, uniforms: []float64{0.5}}
	env := newTestEnv(t, rnd)
	ctx := authedCtx("alex")

	result, err := env.serv.Attempt(ctx, model.HeistAttempt{Target: "merchant", Success: true})
	require.NoError(t, err)

	// Доля баланса NPC тянется из [0.2, 0.7]
	assert.Equal(t, []uniformCall{{min: 0.2, max: 0.7}}, rnd.uniformCalls)

	assert.Equal(t, model.HeistSuccess, result.Outcome)
	assert.Equal(t, "Success! You scammed the merchant for €25,000.00.", result.Message)
	assert.InDelta(t, 25000, result.Stolen, 1e-9)
	assert.InDelta(t, 27500.00, result.Balance, 1e-9)

	// Украденное списано с NPC
	npcBalance, err := env.npcRepo.GetBalance(ctx, "merchant")
	require.NoError(t, err)
	assert.InDelta(t, 25000, npcBalance, 1e-9)

	// Удачная попытка не ставит кулдаун и не пишет активность
	available, _ := env.cooldownRepo.IsAvailable(ctx, "merchant", time.Now())
	assert.True(t, available)

	activities, err := env.userRepo.Activities(ctx, "alex")
	require.NoError(t, err)
	assert.Zero(t, activities.ScamLosses)
}

func TestAttempt_Failure(t *testing.T) {
	env := newTestEnv(t, &scriptedRand{floats: []float64{0.9}})
	ctx := authedCtx("alex")

	result, err := env.serv.Attempt(ctx, model.HeistAttempt{Target: "merchant", Success: false})
	require.NoError(t, err)

	assert.Equal(t, model.HeistFailure, result.Outcome)
	assert.Equal(t, "Failed attempt! You lost €2,250.00 and the merchant is on alert for 30 seconds.", result.Message)
	assert.InDelta(t, 250.00, result.Balance, 1e-9)
	assert.Equal(t, 30, result.CooldownSeconds)

	// NPC уходит на кулдаун
	available, remaining := env.cooldownRepo.IsAvailable(ctx, "merchant", time.Now())
	assert.False(t, available)
	assert.Greater(t, remaining, time.Duration(0))

	// Баланс NPC не изменился
	npcBalance, err := env.npcRepo.GetBalance(ctx, "merchant")
	require.NoError(t, err)
	assert.InDelta(t, 50000, npcBalance, 1e-9)

	activities, err := env.userRepo.Activities(ctx, "alex")
	require.NoError(t, err)
	assert.InDelta(t, 2250, activities.ScamLosses, 1e-9)
}

func TestAttempt_CooldownActive(t *testing.T) {
	env := newTestEnv(t, &scriptedRand{})
	ctx := authedCtx("alex")

	env.cooldownRepo.SetCooldown(ctx, "merchant", time.Now().Add(30*time.Second))

	_, err := env.serv.Attempt(ctx, model.HeistAttempt{Target: "merchant", Success: true})
	require.Error(t, err)

	var cooldownErr *service.CooldownActiveError
	require.True(t, errors.As(err, &cooldownErr))
	assert.Greater(t, cooldownErr.RemainingSeconds, 0)
	assert.LessOrEqual(t, cooldownErr.RemainingSeconds, 30)
	assert.Contains(t, cooldownErr.Error(), "Target under cooldown. Try again in")

	// Под кулдауном баланс игрока не меняется
	balance, err := env.userRepo.GetBalance(ctx, "alex")
	require.NoError(t, err)
	assert.InDelta(t, 2500.00, balance, 1e-9)
}
