package bank

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/Starley-iggy/YahooBank/internal/api/dto/bank"
	"github.com/Starley-iggy/YahooBank/internal/converter"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/req"
	"github.com/Starley-iggy/YahooBank/pkg/resp"
)

type HandlerDeps struct {
	Serv service.BankService
}

type Handler struct {
	serv service.BankService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Account отдает срез счета: баланс и счетчики активности
func (h *Handler) Account(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Account(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToAccountResponse(*result))
}

func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SendRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	to := converter.NormalizeUsername(payload.To)
	if to == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "Recipient missing")
		return
	}

	amount, err := converter.ParseAmount(payload.Amount)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	result, err := h.serv.Send(r.Context(), model.Transfer{To: to, Amount: amount})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSendResponse(*result))
}

func (h *Handler) Spend(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpendRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// Название покупки опционально
	item := "Unknown"
	if payload.Item != nil {
		item = *payload.Item
	}

	cost, err := converter.ParseAmount(payload.Cost)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "Invalid cost")
		return
	}

	result, err := h.serv.Spend(r.Context(), model.Purchase{Item: item, Cost: cost})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpendResponse(*result))
}

func (h *Handler) Invest(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.InvestRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	// Отсутствующая сумма трактуется как 0 и режектится сервисом
	var amount float64
	if payload.Amount != nil {
		amount, err = converter.ParseAmount(payload.Amount)
		if err != nil {
			resp.WriteJSONError(w, http.StatusBadRequest, "Invalid amount")
			return
		}
	}

	result, err := h.serv.Invest(r.Context(), model.Investment{Amount: amount})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToInvestResponse(*result))
}

func (h *Handler) GovBonus(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.GovBonus(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBonusResponse(*result))
}

func (h *Handler) Scam(w http.ResponseWriter, r *http.Request) {
	result, err := h.serv.Scam(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToScamResponse(*result))
}

// writeServiceError переводит ошибки сервиса в HTTP статусы
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthenticated):
		resp.WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, service.ErrNonPositiveAmount):
		resp.WriteJSONError(w, http.StatusBadRequest, "Amount must be positive")
	default:
		log.Println("bank handler error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
