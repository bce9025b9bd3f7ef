package bank

import (
	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/internal/service"
)

type serv struct {
	userRepo repository.UserRepository
	gameCfg  config.GameConfig
	rnd      service.Rand
}

// NewBankService — создать сервис банковских операций
func NewBankService(
	userRepo repository.UserRepository,
	gameCfg config.GameConfig,
	rnd service.Rand,
) service.BankService {
	return &serv{
		userRepo: userRepo,
		gameCfg:  gameCfg,
		rnd:      rnd,
	}
}
