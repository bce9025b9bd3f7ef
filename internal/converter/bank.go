package converter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	bankDto "github.com/Starley-iggy/YahooBank/internal/api/dto/bank"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

// NormalizeUsername приводит логин к канонической форме: без пробелов
// по краям и в нижнем регистре
func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseAmount приводит значение денежного поля из JSON к float64.
// Принимает как число, так и числовую строку — как float() в оригинале
func ParseAmount(value any) (float64, error) {
	switch v := value.(type) {
	case json.Number:
		return v.Float64()
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, fmt.Errorf("unsupported amount type %T", value)
	}
}

func ToSendResponse(res model.TransferResult) bankDto.SendResponse {
	return bankDto.SendResponse{
		Message:          res.Message,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}
}

func ToSpendResponse(res model.PurchaseResult) bankDto.SpendResponse {
	return bankDto.SpendResponse{
		Message:          res.Message,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}
}

func ToInvestResponse(res model.InvestmentResult) bankDto.InvestResponse {
	return bankDto.InvestResponse{
		Success:          true,
		Message:          res.Message,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}
}

func ToBonusResponse(res model.BonusResult) bankDto.BonusResponse {
	return bankDto.BonusResponse{
		Message:          res.Message,
		Amount:           res.Amount,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}
}

// ToScamResponse собирает ответ скама: поле princed отдается только
// в ветке принца, stolen — только при потере
func ToScamResponse(res model.ScamResult) bankDto.ScamResponse {
	response := bankDto.ScamResponse{
		Message:          res.Message,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}

	if res.Princed {
		princed := true
		response.Princed = &princed
	} else {
		stolen := res.Stolen
		response.Stolen = &stolen
	}

	return response
}

func ToAccountResponse(res model.Account) bankDto.AccountResponse {
	return bankDto.AccountResponse{
		Username:         res.Username,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
		Activities: bankDto.ActivitiesPayload{
			Sent:       res.Activities.Sent,
			Spent:      res.Activities.Spent,
			ScamLosses: res.Activities.ScamLosses,
			Invest:     res.Activities.Invest,
			Bonus:      res.Activities.Bonus,
		},
	}
}
