package converter

import (
	npcDto "github.com/Starley-iggy/YahooBank/internal/api/dto/npc"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/pkg/money"
)

func ToHeistAttempt(req npcDto.HeistRequest) model.HeistAttempt {
	return model.HeistAttempt{
		Target:  req.Target,
		Success: req.Success,
	}
}

func ToNPCListResponse(names []string) npcDto.ListResponse {
	return npcDto.ListResponse{NPCs: names}
}

// ToHeistResponse собирает ответ мини-игры: amount отдается только при
// удачной попытке, cooldown_seconds — только при провале
func ToHeistResponse(res model.HeistResult) npcDto.HeistResponse {
	response := npcDto.HeistResponse{
		Success:          res.Outcome == model.HeistSuccess,
		Message:          res.Message,
		Balance:          res.Balance,
		FormattedBalance: money.FormatEuro(res.Balance),
	}

	switch res.Outcome {
	case model.HeistSuccess:
		stolen := res.Stolen
		response.Amount = &stolen
	case model.HeistFailure:
		cooldown := res.CooldownSeconds
		response.CooldownSeconds = &cooldown
	}

	return response
}
