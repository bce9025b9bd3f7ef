package service

import (
	"context"

	"github.com/Starley-iggy/YahooBank/internal/model"
)

type AuthService interface {
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// BankService — банковские операции над счетом пользователя из контекста.
// Имя пользователя сервис берет через middleware.UsernameFromContext
type BankService interface {
	Account(ctx context.Context) (*model.Account, error)
	Send(ctx context.Context, transfer model.Transfer) (*model.TransferResult, error)
	Spend(ctx context.Context, purchase model.Purchase) (*model.PurchaseResult, error)
	Invest(ctx context.Context, investment model.Investment) (*model.InvestmentResult, error)
	GovBonus(ctx context.Context) (*model.BonusResult, error)
	Scam(ctx context.Context) (*model.ScamResult, error)
}

type NPCService interface {
	List(ctx context.Context) []string
	Attempt(ctx context.Context, attempt model.HeistAttempt) (*model.HeistResult, error)
}

// Rand — источник случайности игровых правил.
// В тестах подменяется детерминированной заглушкой
type Rand interface {
	Float64() float64
	Uniform(min, max float64) float64
}
