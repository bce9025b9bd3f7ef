package npc

import (
	"github.com/Starley-iggy/YahooBank/internal/config"
	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/internal/service"
)

type serv struct {
	npcRepo      repository.NPCRepository
	userRepo     repository.UserRepository
	cooldownRepo repository.CooldownRepository
	gameCfg      config.GameConfig
	rnd          service.Rand
}

// NewNPCService — создать сервис мини-игры со скамом NPC
func NewNPCService(
	npcRepo repository.NPCRepository,
	userRepo repository.UserRepository,
	cooldownRepo repository.CooldownRepository,
	gameCfg config.GameConfig,
	rnd service.Rand,
) service.NPCService {
	return &serv{
		npcRepo:      npcRepo,
		userRepo:     userRepo,
		cooldownRepo: cooldownRepo,
		gameCfg:      gameCfg,
		rnd:          rnd,
	}
}
