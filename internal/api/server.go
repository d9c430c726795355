package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"io"
	"net"
	"net/http"
	"time"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rs/zerolog"

	app "github.com/DavidOG03/crack-analyst/internal/application"
	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

// Server HTTP-фасад сервиса анализа трещин.
type Server struct {
	analysis *app.AnalysisService
	hub      *Hub
	log      zerolog.Logger
}

// NewServer создаёт HTTP-фасад поверх сервиса анализа.
func NewServer(analysis *app.AnalysisService, hub *Hub, log zerolog.Logger) *Server {
	return &Server{
		analysis: analysis,
		hub:      hub,
		log:      log,
	}
}

// Routes собирает маршруты вместе с CORS и логированием запросов.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/api/events", s.handleEvents)

	return s.withLogging(s.withCORS(mux))
}

// handleRoot отвечает баннером состояния сервиса.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "Crack analysis service is running",
		"version": "1.0 (computer vision)",
		"endpoints": map[string]string{
			"analyze": "POST /analyze",
			"events":  "GET /api/events",
		},
	})
}

// handleAnalyze принимает файл из multipart-формы и запускает анализ.
// Любой читаемый запрос получает ответ 200, включая статус ERROR для
// нечитаемых изображений.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	s.logUpload(header.Filename, data)

	result, err := s.analysis.AnalyzePhoto(r.Context(), data)
	if err != nil {
		s.log.Error().Err(err).Msg("analysis failed")
		s.writeJSON(w, http.StatusInternalServerError, NewAnalysisResponse(entity.NewErrorResult("analysis failed")))
		return
	}

	s.writeJSON(w, http.StatusOK, NewAnalysisResponse(result))
}

// handleEvents передаёт соединение хабу рассылки результатов.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		http.NotFound(w, r)
		return
	}
	s.hub.HandleEvents(w, r)
}

// logUpload фиксирует формат и размеры снимка до запуска конвейера.
func (s *Server) logUpload(filename string, data []byte) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.log.Debug().Str("file", filename).Int("bytes", len(data)).Msg("upload format not recognized")
		return
	}

	s.log.Info().
		Str("file", filename).
		Str("format", format).
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Msg("photo received")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

// withCORS открывает API для браузерных клиентов с любых доменов.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging пишет в лог метод, путь, статус и длительность запроса.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(started)).
			Msg("request handled")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack пробрасывает захват соединения для WebSocket-апгрейда.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return hijacker.Hijack()
}
