package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
	"github.com/DavidOG03/crack-analyst/internal/domain/port"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// resultEvent компактное событие для подписчиков ленты результатов
type resultEvent struct {
	Status     string `json:"status"`
	Severity   string `json:"severity,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Components int    `json:"components"`
}

// Hub рассылает результаты анализа подключённым WebSocket-клиентам.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
	log        zerolog.Logger
}

// NewHub создаёт пустой хаб. Рассылка начинается после запуска Run.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		log:        log,
	}
}

// Run обслуживает подключение, отключение и рассылку. Запускается в
// отдельной горутине и работает до конца жизни процесса.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("total", total).Msg("observer connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info().Int("total", total).Msg("observer disconnected")

		case message := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
					h.log.Error().Err(err).Msg("dropping observer")
					delete(h.clients, client)
					client.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish отправляет событие с вердиктом всем подписчикам.
func (h *Hub) Publish(result *entity.AnalysisResult) {
	event := resultEvent{
		Status:     string(result.Status),
		Reason:     result.Reason,
		Components: len(result.Regions),
	}
	if result.Status == entity.StatusStructuralCrack {
		event.Severity = result.Severity.String()
	}

	message, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("marshal result event")
		return
	}

	h.broadcast <- message
}

// ClientCount возвращает число подключённых наблюдателей.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// HandleEvents обрабатывает подключение наблюдателя и держит его до
// разрыва соединения.
func (h *Hub) HandleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.register <- conn
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Проверка реализации интерфейса
var _ port.ResultPublisher = (*Hub)(nil)
