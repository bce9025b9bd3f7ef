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
	// Максимальная кратность выигрыша и проигрыша от вложенной суммы
	maxGainFactor = 2.0
	maxLossFactor = 2.0
)

// Invest разыгрывает инвестицию: множитель тянется равномерно
// из [-maxLossFactor, maxGainFactor], итог применяется к балансу
// без округления и может быть как крупным выигрышем, так и потерей
func (s *serv) Invest(ctx context.Context, investment model.Investment) (*model.InvestmentResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	// Валидация суммы
	if investment.Amount <= 0 {
		return nil, service.ErrNonPositiveAmount
	}

	factor := s.rnd.Uniform(-maxLossFactor, maxGainFactor)
	netChange := investment.Amount * factor

	balance, err := s.userRepo.AdjustBalance(ctx, username, netChange)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RecordActivity(ctx, username, model.ActivityInvest, netChange); err != nil {
		return nil, err
	}

	// Порог в 1 евро между "gained" и "lost" — как в оригинале,
	// мелкий плюс тоже репортится как потеря
	var message string
	if netChange >= 1 {
		message = fmt.Sprintf("Your investment of %s gained %s (factor %.2f).",
			money.FormatEuro(investment.Amount), money.FormatEuro(netChange), factor)
	} else {
		message = fmt.Sprintf("Your investment of %s lost %s (factor %.2f).",
			money.FormatEuro(investment.Amount), money.FormatEuro(-netChange), factor)
	}

	return &model.InvestmentResult{
		Message:   message,
		NetChange: netChange,
		Balance:   balance,
	}, nil
}
