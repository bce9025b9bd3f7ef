package app

import (
	"log"
	"net/http"

	"github.com/Starley-iggy/YahooBank/internal/config"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()

	r := s.ServiceProvider.Router()

	log.Printf("starting server at %s", s.ServiceProvider.HTTPCfg().Address())
	log.Printf("demo logins: alex/1234, jamie/password, user/pass")
	err = http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
	if err != nil {
		return err
	}
	return err
}
