package auth

import (
	"errors"
	"log"
	"net/http"

	dto "github.com/Starley-iggy/YahooBank/internal/api/dto/auth"
	"github.com/Starley-iggy/YahooBank/internal/converter"
	"github.com/Starley-iggy/YahooBank/internal/model"
	"github.com/Starley-iggy/YahooBank/internal/service"
	"github.com/Starley-iggy/YahooBank/pkg/req"
	"github.com/Starley-iggy/YahooBank/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Login открывает сессию: ставит cookies session_id и refresh_token,
// access токен возвращает в теле ответа
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	login := converter.NormalizeUsername(requestBody.Username)
	if login == "" || requestBody.Password == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "Missing username or password")
		return
	}

	data, err := h.serv.Login(r.Context(), login, requestBody.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			resp.WriteJSONError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Println("Login error:", err)
		resp.WriteJSONError(w, http.StatusInternalServerError, "login failed")
		return
	}

	setSessionIDCookie(w, data.SessionID)
	setRefreshTokenCookie(w, data.RefreshToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message:     "Logged in as " + login,
		AccessToken: data.AccessToken,
	})
}

// Logout закрывает сессию по session_id.
// Отвечает 200 даже без сессии — как оригинал
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie("session_id"); err == nil {
		if err := h.serv.Logout(r.Context(), c.Value); err != nil {
			log.Println("Logout error:", err)
		}
	}

	deleteSessionIDCookie(w)
	deleteRefreshTokenCookie(w)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LogoutResponse{Message: "Logged out"})
}

// Refresh обновляет access токен по session_id и refresh_token из cookies
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	sessionCookie, err := r.Cookie("session_id")
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no session_id cookie")
		return
	}

	refreshCookie, err := r.Cookie("refresh_token")
	if err != nil {
		resp.WriteJSONError(w, http.StatusUnauthorized, "no refresh_token cookie")
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), &model.AuthData{
		SessionID:    sessionCookie.Value,
		RefreshToken: refreshCookie.Value,
	})
	if err != nil {
		log.Println("Refresh error:", err)
		resp.WriteJSONError(w, http.StatusUnauthorized, "refresh failed")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
}

// deleteSessionIDCookie удаляет cookie с session_id
func deleteSessionIDCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "session_id",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// setRefreshTokenCookie устанавливает cookie с refresh_token
func setRefreshTokenCookie(w http.ResponseWriter, refreshToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Path:     "/api/refresh",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   30 * 24 * 60 * 60, // 30 дней
	})
}

// deleteRefreshTokenCookie удаляет cookie с refresh_token
func deleteRefreshTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/refresh",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
