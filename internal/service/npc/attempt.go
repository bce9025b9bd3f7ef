package npc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

const (
	// Границы суммы мести NPC
	revengeMin = 100.0
	revengeMax = 1000.0

	// Границы доли баланса NPC, которую уносит удачная попытка
	stealMinPct = 0.2
	stealMaxPct = 0.7

	// Доля баланса игрока, сгорающая при провале
	failurePenaltyRate = 0.9
)

// Attempt разыгрывает попытку скама NPC.
// Порядок проверок фиксирован: существование цели, кулдаун, месть NPC
// (срабатывает раньше всего и игнорирует флаг success), затем ветка
// по флагу success от клиента
func (s *serv) Attempt(ctx context.Context, attempt model.HeistAttempt) (*model.HeistResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	if !s.npcRepo.Exists(ctx, attempt.Target) {
		return nil, service.ErrUnknownTarget
	}

	now := time.Now()
	available, remaining := s.cooldownRepo.IsAvailable(ctx, attempt.Target, now)
	if !available {
		return nil, &service.CooldownActiveError{RemainingSeconds: int(remaining.Seconds())}
	}

	// Имя NPC в сообщениях — с пробелами вместо подчеркиваний
	displayName := strings.ReplaceAll(attempt.Target, "_", " ")

	// Месть NPC: игрок теряет случайную сумму, баланс NPC не меняется,
	// кулдаун не ставится
	if s.rnd.Float64() <= s.gameCfg.NPCRevengeOdds() {
		revenge := money.Round(s.rnd.Uniform(revengeMin, revengeMax))

		balance, err := s.userRepo.AdjustBalance(ctx, username, -revenge)
		if err != nil {
			return nil, err
		}
		if err := s.userRepo.RecordActivity(ctx, username, model.ActivityScamLosses, revenge); err != nil {
			return nil, err
		}

		return &model.HeistResult{
			Outcome: model.HeistRevenge,
			Message: fmt.Sprintf("The %s got suspicious and REVENGED you for %s!", displayName, money.FormatEuro(revenge)),
			Balance: balance,
		}, nil
	}

	if attempt.Success {
		// Удачная попытка: процент ТЕКУЩЕГО баланса NPC переходит игроку
		npcBalance, err := s.npcRepo.GetBalance(ctx, attempt.Target)
		if err != nil {
			return nil, err
		}

		pct := s.rnd.Uniform(stealMinPct, stealMaxPct)
		stolen := money.Round(npcBalance * pct)

		if _, err := s.npcRepo.AdjustBalance(ctx, attempt.Target, -stolen); err != nil {
			return nil, err
		}
		balance, err := s.userRepo.AdjustBalance(ctx, username, stolen)
		if err != nil {
			return nil, err
		}

		return &model.HeistResult{
			Outcome: model.HeistSuccess,
			Message: fmt.Sprintf("Success! You scammed the %s for %s.", displayName, money.FormatEuro(stolen)),
			Balance: balance,
			Stolen:  stolen,
		}, nil
	}

	// Провал: сгорает доля ТЕКУЩЕГО баланса игрока, NPC уходит на кулдаун
	playerBalance, err := s.userRepo.GetBalance(ctx, username)
	if err != nil {
		return nil, err
	}

	penalty := money.Round(playerBalance * failurePenaltyRate)

	balance, err := s.userRepo.AdjustBalance(ctx, username, -penalty)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.RecordActivity(ctx, username, model.ActivityScamLosses, penalty); err != nil {
		return nil, err
	}

	cooldown := s.gameCfg.NPCCooldown()
	s.cooldownRepo.SetCooldown(ctx, attempt.Target, now.Add(cooldown))

	cooldownSeconds := int(cooldown.Seconds())
	return &model.HeistResult{
		Outcome: model.HeistFailure,
		Message: fmt.Sprintf("Failed attempt! You lost %s and the %s is on alert for %d seconds.",
			money.FormatEuro(penalty), displayName, cooldownSeconds),
		Balance:         balance,
		CooldownSeconds: cooldownSeconds,
	}, nil
}
