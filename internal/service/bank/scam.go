package bank

import (
	"context"
	"fmt"

	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

const (
	// Фиксированная награда ветки "нигерийского принца"
	princeReward = 10000.00

	// Границы доли текущего баланса, которую уносит скам
	scamStealMinPct = 0.5
	scamStealMaxPct = 0.9
)

// Scam разыгрывает письмо от скамера. С шансом ScamPrinceOdds пользователь
// получает фиксированную награду, иначе теряет случайную долю
// ТЕКУЩЕГО баланса. Ветки взаимоисключающие
func (s *serv) Scam(ctx context.Context) (*model.ScamResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	chance := s.rnd.Float64()
	if chance <= s.gameCfg.ScamPrinceOdds() {
		balance, err := s.userRepo.AdjustBalance(ctx, username, princeReward)
		if err != nil {
			return nil, err
		}

		// Награда принца учитывается как бонус, а не как потеря
		if err := s.userRepo.RecordActivity(ctx, username, model.ActivityBonus, princeReward); err != nil {
			return nil, err
		}

		return &model.ScamResult{
			Message: fmt.Sprintf("The Nigerian Prince blessed your account with %s! ", money.FormatEuro(princeReward)),
			Balance: balance,
			Princed: true,
		}, nil
	}

	current, err := s.userRepo.GetBalance(ctx, username)
	if err != nil {
		return nil, err
	}

	percent := s.rnd.Uniform(scamStealMinPct, scamStealMaxPct)
	stolen := money.Round(current * percent)

	balance, err := s.userRepo.AdjustBalance(ctx, username, -stolen)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RecordActivity(ctx, username, model.ActivityScamLosses, stolen); err != nil {
		return nil, err
	}

	return &model.ScamResult{
		Message: fmt.Sprintf("You got scammed and lost %s!", money.FormatEuro(stolen)),
		Balance: balance,
		Stolen:  stolen,
	}, nil
}
