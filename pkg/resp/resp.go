package resp

import (
	"encoding/json"
	"log"
	"net/http"
)

// WriteJSONResponse сериализует payload в JSON и пишет его в ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("write json response:", err)
	}
}

// WriteJSONError пишет JSON объект с единственным полем error
func WriteJSONError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, map[string]string{"error": message})
}
