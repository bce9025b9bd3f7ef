package npc

type ListResponse struct {
	NPCs []string `json:"npcs"` // Имена NPC в порядке из конфига
}

type HeistRequest struct {
	Target  string `json:"target"`  // Имя NPC
	Success bool   `json:"success"` // Итог мини-игры на клиенте
}

type HeistResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	Balance          float64  `json:"balance"`
	FormattedBalance string   `json:"formatted_balance"`
	Amount           *float64 `json:"amount,omitempty"`           // Украдено у NPC (удачная попытка)
	CooldownSeconds  *int     `json:"cooldown_seconds,omitempty"` // Кулдаун (провал)
}
