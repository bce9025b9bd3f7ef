package bank

import (
	"context"
	"fmt"

	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

// Send выполняет перевод другому пользователю.
// Сумма списывается с отправителя безусловно, даже если денег не хватает.
// Если получатель неизвестен, деньги просто пропадают — это поведение
// оригинала, а не ошибка. Сумма применяется без округления
func (s *serv) Send(ctx context.Context, transfer model.Transfer) (*model.TransferResult, error) {
	username, ok := middleware.UsernameFromContext(ctx)
	if !ok {
		return nil, service.ErrNotAuthenticated
	}

	// Списание с отправителя
	balance, err := s.userRepo.AdjustBalance(ctx, username, -transfer.Amount)
	if err != nil {
		return nil, err
	}

	// Зачисление получателю только если он существует
	if s.userRepo.Exists(ctx, transfer.To) {
		credited, err := s.userRepo.AdjustBalance(ctx, transfer.To, transfer.Amount)
		if err != nil {
			return nil, err
		}
		// Перевод самому себе: в ответе итог после обеих мутаций
		if transfer.To == username {
			balance = credited
		}
	}

	if err := s.userRepo.RecordActivity(ctx, username, model.ActivitySent, transfer.Amount); err != nil {
		return nil, err
	}

	return &model.TransferResult{
		Message: fmt.Sprintf("Sent %s to %s.", money.FormatEuro(transfer.Amount), transfer.To),
		Balance: balance,
	}, nil
}
