package bank

type SendRequest struct {
	To     string `json:"to"`     // Логин получателя
	Amount any    `json:"amount"` // Число или числовая строка
}

type SendResponse struct {
	Message          string  `json:"message"`
	Balance          float64 `json:"balance"` // Баланс отправителя после
	FormattedBalance string  `json:"formatted_balance"`
}

type SpendRequest struct {
	Item *string `json:"item"` // Название покупки, по умолчанию "Unknown"
	Cost any     `json:"cost"` // Число или числовая строка
}

type SpendResponse struct {
	Message          string  `json:"message"`
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
}

type InvestRequest struct {
	Amount any `json:"amount"` // Ставка, должна быть > 0
}

type InvestResponse struct {
	Success          bool    `json:"success"`
	Message          string  `json:"message"`
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
}

type BonusResponse struct {
	Message          string  `json:"message"`
	Amount           float64 `json:"amount"` // Размер выплаты
	Balance          float64 `json:"balance"`
	FormattedBalance string  `json:"formatted_balance"`
}

type ScamResponse struct {
	Message          string   `json:"message"`
	Balance          float64  `json:"balance"`
	FormattedBalance string   `json:"formatted_balance"`
	Princed          *bool    `json:"princed,omitempty"` // Только в ветке принца
	Stolen           *float64 `json:"stolen,omitempty"`  // Только при потере
}

type ActivitiesPayload struct {
	Sent       float64 `json:"sent"`
	Spent      float64 `json:"spent"`
	ScamLosses float64 `json:"scam_losses"`
	Invest     float64 `json:"invest"`
	Bonus      float64 `json:"bonus"`
}

type AccountResponse struct {
	Username         string            `json:"username"`
	Balance          float64           `json:"balance"`
	FormattedBalance string            `json:"formatted_balance"`
	Activities       ActivitiesPayload `json:"activities"`
}
