package env

import (
	"fmt"
	"os"
	"time"

	"github.com/Starley-iggy/YahooBank/internal/config"

	"gopkg.in/yaml.v3"
)

// gameYAML — сырой формат config.yaml
type gameYAML struct {
	Game struct {
		ScamPrinceOdds     float64 `yaml:"scam_prince_odds"`
		NPCRevengeOdds     float64 `yaml:"npc_revenge_odds"`
		NPCCooldownSeconds int     `yaml:"npc_cooldown_seconds"`
	} `yaml:"game"`
	Users []config.SeedUser `yaml:"users"`
	NPCs  []config.SeedNPC  `yaml:"npcs"`
}

type gameConfig struct {
	scamPrinceOdds float64
	npcRevengeOdds float64
	npcCooldown    time.Duration
	seedUsers      []config.SeedUser
	seedNPCs       []config.SeedNPC
}

// NewGameConfigFromYAML читает игровые константы и стартовый леджер из YAML файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if parsed.Game.ScamPrinceOdds < 0 || parsed.Game.ScamPrinceOdds > 1 {
		return nil, fmt.Errorf("scam_prince_odds must be in [0, 1], got %v", parsed.Game.ScamPrinceOdds)
	}
	if parsed.Game.NPCRevengeOdds < 0 || parsed.Game.NPCRevengeOdds > 1 {
		return nil, fmt.Errorf("npc_revenge_odds must be in [0, 1], got %v", parsed.Game.NPCRevengeOdds)
	}
	if parsed.Game.NPCCooldownSeconds <= 0 {
		return nil, fmt.Errorf("npc_cooldown_seconds must be positive, got %d", parsed.Game.NPCCooldownSeconds)
	}
	if len(parsed.Users) == 0 {
		return nil, fmt.Errorf("game config has no seed users")
	}
	if len(parsed.NPCs) == 0 {
		return nil, fmt.Errorf("game config has no seed npcs")
	}

	return &gameConfig{
		scamPrinceOdds: parsed.Game.ScamPrinceOdds,
		npcRevengeOdds: parsed.Game.NPCRevengeOdds,
		npcCooldown:    time.Duration(parsed.Game.NPCCooldownSeconds) * time.Second,
		seedUsers:      parsed.Users,
		seedNPCs:       parsed.NPCs,
	}, nil
}

func (cfg *gameConfig) ScamPrinceOdds() float64 {
	return cfg.scamPrinceOdds
}

func (cfg *gameConfig) NPCRevengeOdds() float64 {
	return cfg.npcRevengeOdds
}

func (cfg *gameConfig) NPCCooldown() time.Duration {
	return cfg.npcCooldown
}

func (cfg *gameConfig) SeedUsers() []config.SeedUser {
	return cfg.seedUsers
}

func (cfg *gameConfig) SeedNPCs() []config.SeedNPC {
	return cfg.seedNPCs
}
