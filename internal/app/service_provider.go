package app

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authAPI "github.com/Starley-iggy/YahooBank/internal/api/auth"
	bankAPI "github.com/Starley-iggy/YahooBank/internal/api/bank"
	npcAPI "github.com/Starley-iggy/YahooBank/internal/api/npc"
	"github.com/Starley-iggy/YahooBank/internal/api/pages"
	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/config/env"
	"github.com/Starley-iggy/YahooBank/internal/middleware"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/internal/repository/auth_repo"
	"github.com/Starley-iggy/YahooBank/internal/repository/cooldown_repo"
	"github.com/Starley-iggy/YahooBank/internal/repository/npc_repo"
	"github.com/Starley-iggy/YahooBank/internal/repository/user_repo"
	"github.com/Starley-iggy/YahooBank/internal/service"
	authServ "github.com/Starley-iggy/YahooBank/internal/service/auth"
	bankServ "github.com/Starley-iggy/YahooBank/internal/service/bank"
	npcServ "github.com/Starley-iggy/YahooBank/internal/service/npc"
	"github.com/Starley-iggy/YahooBank/pkg/rng"
)

type ServiceProvider struct {
	// Configs
	gameCfg config.GameConfig
	authCfg config.AuthConfig
	httpCfg config.HTTPConfig

	// Randomness
	rnd service.Rand

	// Repositories
	userRepo     repository.UserRepository
	npcRepo      repository.NPCRepository
	cooldownRepo repository.CooldownRepository
	authRepo     repository.AuthRepository

	// Services
	authService service.AuthService
	bankService service.BankService
	npcService  service.NPCService

	// Handlers
	authHand  *authAPI.Handler
	bankHand  *bankAPI.Handler
	npcHand   *npcAPI.Handler
	pagesHand *pages.Handler

	// Router
	router chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) GameCfg() config.GameConfig {
	if sp.gameCfg == nil {
		cfg, err := env.NewGameConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get game config: " + err.Error())
		}
		sp.gameCfg = cfg
	}
	return sp.gameCfg
}

func (sp *ServiceProvider) AuthCfg() config.AuthConfig {
	if sp.authCfg == nil {
		cfg, err := env.NewAuthConfig()
		if err != nil {
			panic("failed to get auth config: " + err.Error())
		}
		sp.authCfg = cfg
	}
	return sp.authCfg
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Rand() service.Rand {
	if sp.rnd == nil {
		sp.rnd = rng.New()
	}
	return sp.rnd
}

func (sp *ServiceProvider) UserRepo() repository.UserRepository {
	if sp.userRepo == nil {
		repo, err := user_repo.NewUserRepository(sp.GameCfg().SeedUsers())
		if err != nil {
			panic("failed to create user repository: " + err.Error())
		}
		sp.userRepo = repo
	}
	return sp.userRepo
}

func (sp *ServiceProvider) NPCRepo() repository.NPCRepository {
	if sp.npcRepo == nil {
		sp.npcRepo = npc_repo.NewNPCRepository(sp.GameCfg().SeedNPCs())
	}
	return sp.npcRepo
}

func (sp *ServiceProvider) CooldownRepo() repository.CooldownRepository {
	if sp.cooldownRepo == nil {
		sp.cooldownRepo = cooldown_repo.NewCooldownRepository()
	}
	return sp.cooldownRepo
}

func (sp *ServiceProvider) AuthRepo() repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository()
	}
	return sp.authRepo
}

func (sp *ServiceProvider) AuthService() service.AuthService {
	if sp.authService == nil {
		sp.authService = authServ.NewService(sp.UserRepo(), sp.AuthRepo(), sp.AuthCfg())
	}
	return sp.authService
}

func (sp *ServiceProvider) BankService() service.BankService {
	if sp.bankService == nil {
		sp.bankService = bankServ.NewBankService(sp.UserRepo(), sp.GameCfg(), sp.Rand())
	}
	return sp.bankService
}

func (sp *ServiceProvider) NPCService() service.NPCService {
	if sp.npcService == nil {
		sp.npcService = npcServ.NewNPCService(sp.NPCRepo(), sp.UserRepo(), sp.CooldownRepo(), sp.GameCfg(), sp.Rand())
	}
	return sp.npcService
}

func (sp *ServiceProvider) AuthHandler() *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{Serv: sp.AuthService()})
	}
	return sp.authHand
}

func (sp *ServiceProvider) BankHandler() *bankAPI.Handler {
	if sp.bankHand == nil {
		sp.bankHand = bankAPI.NewHandler(bankAPI.HandlerDeps{Serv: sp.BankService()})
	}
	return sp.bankHand
}

func (sp *ServiceProvider) NPCHandler() *npcAPI.Handler {
	if sp.npcHand == nil {
		sp.npcHand = npcAPI.NewHandler(npcAPI.HandlerDeps{Serv: sp.NPCService()})
	}
	return sp.npcHand
}

func (sp *ServiceProvider) PagesHandler() *pages.Handler {
	if sp.pagesHand == nil {
		sp.pagesHand = pages.NewHandler(pages.HandlerDeps{Sessions: sp.AuthRepo()})
	}
	return sp.pagesHand
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.Logger)
		r.Use(chimw.Recoverer)
		r.Use(middleware.Metrics)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Pages and static assets
		pagesHandler := sp.PagesHandler()
		r.Get("/", pagesHandler.Index)
		r.Get("/dashboard", pagesHandler.Dashboard)
		r.Handle("/static/*", pages.Static())

		// Prometheus
		r.Handle("/metrics", promhttp.Handler())

		// API endpoints
		authHandler := sp.AuthHandler()
		bankHandler := sp.BankHandler()
		npcHandler := sp.NPCHandler()
		r.Route("/api", func(rr chi.Router) {
			rr.Post("/login", authHandler.Login)
			rr.Post("/logout", authHandler.Logout)
			rr.Post("/refresh", authHandler.Refresh)

			// Все остальное — только с сессией или Bearer токеном
			rr.Group(func(pr chi.Router) {
				pr.Use(middleware.Auth(sp.AuthRepo(), sp.AuthCfg().AccessTokenSecretKey()))

				pr.Get("/account", bankHandler.Account)
				pr.Post("/send", bankHandler.Send)
				pr.Post("/spend", bankHandler.Spend)
				pr.Post("/invest", bankHandler.Invest)
				pr.Post("/govbonus", bankHandler.GovBonus)
				pr.Post("/scam", bankHandler.Scam)

				pr.Get("/npcs", npcHandler.List)
				pr.Post("/scam_mini_game", npcHandler.Attempt)
			})
		})

		sp.router = r
	}

	return sp.router
}
