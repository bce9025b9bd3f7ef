package npc

import (
	"context"
)

// List возвращает имена всех NPC в порядке из конфига
func (s *serv) List(ctx context.Context) []string {
	return s.npcRepo.Names(ctx)
}
