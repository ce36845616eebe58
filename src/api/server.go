package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/services"
)

type Server struct {
	Scanner *services.Scanner
	Config  models.ScreeningConfig
}

func NewServer(scanner *services.Scanner, cfg models.ScreeningConfig) *Server {
	return &Server{
		Scanner: scanner,
		Config:  cfg,
	}
}

// RouterSetup registers the screener routes under prefix. Each handler is
// wrapped so its pattern lands on the http.route span attribute.
func (s *Server) RouterSetup(prefix string, router *mux.Router) {
	handleFunc := func(pattern string, handlerFunc func(http.ResponseWriter, *http.Request)) {
		handler := otelhttp.WithRouteTag(pattern, http.HandlerFunc(handlerFunc))
		router.Handle(fmt.Sprintf("%s%s", prefix, pattern), handler)
	}

	handleFunc("/spreads", s.scanHandler)
	handleFunc("/health", s.healthHandler)
}
