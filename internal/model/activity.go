package model

// ActivityCategory — категория накопительного счетчика активности пользователя
type ActivityCategory string

const (
	ActivitySent       ActivityCategory = "sent"
	ActivitySpent      ActivityCategory = "spent"
	ActivityScamLosses ActivityCategory = "scam_losses"
	ActivityInvest     ActivityCategory = "invest"
	ActivityBonus      ActivityCategory = "bonus"
)

// Activities — накопительные суммы по категориям.
// Только пишутся, никогда не влияют на поведение операций
type Activities struct {
	Sent       float64
	Spent      float64
	ScamLosses float64
	Invest     float64
	Bonus      float64
}
