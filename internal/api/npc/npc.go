package npc

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/Starley-iggy/YahooBank/internal/api/dto/npc"
	"github.com/Starley-iggy/YahooBank/internal/converter"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/req"
	"github.com/Starley-iggy/YahooBank/pkg/resp"
)

type HandlerDeps struct {
	Serv service.NPCService
}

type Handler struct {
	serv service.NPCService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// List отдает имена всех NPC. Ничего не мутирует
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	names := h.serv.List(r.Context())

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToNPCListResponse(names))
}

// Attempt разыгрывает попытку скама NPC
func (h *Handler) Attempt(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.HeistRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Attempt(r.Context(), converter.ToHeistAttempt(payload))
	if err != nil {
		var cooldownErr *service.CooldownActiveError
		switch {
		case errors.Is(err, service.ErrUnknownTarget):
			resp.WriteJSONError(w, http.StatusBadRequest, "Invalid target")
		case errors.As(err, &cooldownErr):
			resp.WriteJSONError(w, http.StatusBadRequest, cooldownErr.Error())
		case errors.Is(err, service.ErrNotAuthenticated):
			resp.WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		default:
			log.Println("npc handler error:", err)
			resp.WriteJSONError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHeistResponse(*result))
}
