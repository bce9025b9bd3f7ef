package bank

import (
	"context"

	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
)

// Account возвращает срез счета: баланс и счетчики активности.
// Ничего не мутирует
func (s *serv) Account(ctx context.Context) (*model.Account, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	balance, err := s.userRepo.GetBalance(ctx, username)
	if err != nil {
		return nil, err
	}

	activities, err := s.userRepo.Activities(ctx, username)
	if err != nil {
		return nil, err
	}

	return &model.Account{
		Username:   username,
		Balance:    balance,
		Activities: activities,
	}, nil
}
