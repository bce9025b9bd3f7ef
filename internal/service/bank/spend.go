package bank

import (
	"context"
	"fmt"

	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

// Spend списывает стоимость покупки безусловно, без проверки остатка
func (s *serv) Spend(ctx context.Context, purchase model.Purchase) (*model.PurchaseResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	balance, err := s.userRepo.AdjustBalance(ctx, username, -purchase.Cost)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.RecordActivity(ctx, username, model.ActivitySpent, purchase.Cost); err != nil {
		return nil, err
	}

	return &model.PurchaseResult{
		Message: fmt.Sprintf("Bought %s for %s.", purchase.Item, money.FormatEuro(purchase.Cost)),
		Balance: balance,
	}, nil
}
