package model

// HeistAttempt — попытка скама NPC в мини-игре.
// Success присылает клиент: прошла ли у него мини-игра
type HeistAttempt struct {
	Target  string
	Success bool
}

type HeistOutcome string

const (
	// NPC заподозрил игрока и отомстил, флаг Success игнорируется
	HeistRevenge HeistOutcome = "revenge"
	// Игрок украл процент баланса NPC
	HeistSuccess HeistOutcome = "success"
	// Игрок потерял 90% баланса, NPC уходит на кулдаун
	HeistFailure HeistOutcome = "failure"
)

type HeistResult struct {
	Outcome         HeistOutcome
	Message         string
	Balance         float64 // Баланс игрока после попытки
	Stolen          float64 // Украдено у NPC (только для HeistSuccess)
	CooldownSeconds int     // Длительность кулдауна (только для HeistFailure)
}
