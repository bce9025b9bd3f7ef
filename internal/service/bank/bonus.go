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
	govBonusMin = 50.0
	govBonusMax = 500.0
)

// GovBonus начисляет случайную правительственную выплату.
// Никакого лимита на частоту запросов нет
func (s *serv) GovBonus(ctx context.Context) (*model.BonusResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	amount := money.Round(s.rnd.Uniform(govBonusMin, govBonusMax))

	balance, err := s.userRepo.AdjustBalance(ctx, username, amount)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RecordActivity(ctx, username, model.ActivityBonus, amount); err != nil {
		return nil, err
	}

	return &model.BonusResult{
		Message: fmt.Sprintf("You received a government bonus of %s!", money.FormatEuro(amount)),
		Amount:  amount,
		Balance: balance,
	}, nil
}
