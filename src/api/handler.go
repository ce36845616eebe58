package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(200)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(statusCode int, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := models.ErrorDTO{Msg: err.Error()}
	if encodeErr := json.NewEncoder(w).Encode(resp); encodeErr != nil {
		log.Errorf("setErrorResponse: encode: %v", encodeErr)
	}
}

func (s *Server) scanHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(404)
		return
	}

	dto := new(models.ScanRequestDTO)

	if err := dto.ParseHTTPRequest(r); err != nil {
		setErrorResponse(400, err, w)
		return
	}

	if err := dto.Validate(r); err != nil {
		setErrorResponse(400, err, w)
		return
	}

	cfg, err := dto.ApplyTo(s.Config)
	if err != nil {
		setErrorResponse(400, err, w)
		return
	}

	result, err := s.Scanner.RunScan(r.Context(), cfg, time.Now())
	if err != nil {
		log.Errorf("scanHandler: scan failed: %v", err)
		setErrorResponse(500, err, w)
		return
	}

	if err := setResponse(result, w); err != nil {
		log.Errorf("scanHandler: %v", err)
	}
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := setResponse(map[string]string{"status": "ok"}, w); err != nil {
		log.Errorf("healthHandler: %v", err)
	}
}
