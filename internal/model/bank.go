package model

type Transfer struct {
	To     string
	Amount float64
}

type TransferResult struct {
	Message string
	Balance float64 // Баланс отправителя после перевода
}

type Purchase struct {
	Item string
	Cost float64
}

type PurchaseResult struct {
	Message string
	Balance float64
}

type Investment struct {
	Amount float64
}

type InvestmentResult struct {
	Message   string
	NetChange float64 // Итог инвестиции, может быть отрицательным
	Balance   float64
}

type BonusResult struct {
	Message string
	Amount  float64
	Balance float64
}

type ScamResult struct {
	Message string
	Balance float64
	Princed bool    // Ветка "нигерийского принца"
	Stolen  float64 // Сумма потери в обычной ветке
}

type Account struct {
	Username   string
	Balance    float64
	Activities Activities
}
