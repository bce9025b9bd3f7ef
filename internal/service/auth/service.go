package auth

import (
	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/internal/service"
)

type serv struct {
	userRepo repository.UserRepository
	authRepo repository.AuthRepository
	authCfg  config.AuthConfig
}

func NewService(
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	authCfg config.AuthConfig,
) service.AuthService {
	return &serv{
		userRepo: userRepo,
		authRepo: authRepo,
		authCfg:  authCfg,
	}
}
