package pages

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/Starley-iggy/YahooBank/internal/repository"
)

//go:embed static
var content embed.FS

type HandlerDeps struct {
	Sessions repository.AuthRepository
}

type Handler struct {
	sessions repository.AuthRepository
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{sessions: deps.Sessions}
}

// Index — страница входа. Залогиненных уводит на дашборд
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	if h.hasSession(r) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}

	h.servePage(w, "static/index.html")
}

// Dashboard — основной экран банка. Без сессии уводит на вход
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.hasSession(r) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.servePage(w, "static/dashboard.html")
}

// Static — файловый сервер для ассетов фронтенда
func Static() http.Handler {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic("static assets missing: " + err.Error())
	}

	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func (h *Handler) hasSession(r *http.Request) bool {
	c, err := r.Cookie("session_id")
	if err != nil {
		return false
	}

	_, err = h.sessions.GetSession(r.Context(), c.Value)
	return err == nil
}

func (h *Handler) servePage(w http.ResponseWriter, name string) {
	data, err := content.ReadFile(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
