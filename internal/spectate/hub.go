// internal/spectate/hub.go
package spectate

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"go-lane-skirmish/internal/app"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	writeWait  = 5 * time.Second
	sendBuffer = 16
)

// Format — кодировка кадров для клиента.
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

// ParseFormat читает ?format= из запроса. Пустое значение — JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	default:
		return FormatJSON, fmt.Errorf("unknown format %q", s)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	format Format
}

// Hub раздаёт снимки симуляции зрителям. Ввода от клиентов не принимает.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte // последний снимок в JSON для GET /snapshot
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]struct{})}
}

// Handler — маршруты зрителя: /ws (websocket) и /snapshot (последний кадр в JSON).
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/snapshot", h.serveSnapshot)
	return mux
}

// ListenAndServe блокирует до ошибки сервера.
func (h *Hub) ListenAndServe(addr string) error {
	log.Printf("Spectator feed on ws://%s/ws", addr)
	if err := http.ListenAndServe(addr, h.Handler()); err != nil {
		return fmt.Errorf("spectator server: %w", err)
	}
	return nil
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	format, err := ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	c := &client{
		id:     "s_" + uuid.NewString()[:8],
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		format: format,
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	log.Printf("Spectator %s connected (%d watching)", c.id, h.ClientCount())

	go h.writePump(c)
	go h.readPump(c)
}

func (h *Hub) serveSnapshot(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	latest := h.latest
	h.mu.Unlock()
	if latest == nil {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(latest)
}

// readPump только ждёт закрытия соединения: всё, что шлёт зритель, игнорируется.
func (h *Hub) readPump(c *client) {
	defer func() {
		h.remove(c)
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	messageType := websocket.TextMessage
	if c.format == FormatMsgpack {
		messageType = websocket.BinaryMessage
	}
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(messageType, message); err != nil {
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	n := len(h.clients)
	h.mu.Unlock()
	log.Printf("Spectator %s disconnected (%d watching)", c.id, n)
}

// ClientCount — число подключённых зрителей.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Publish рассылает снимок. Не блокирует тик: медленный клиент теряет кадр.
func (h *Hub) Publish(snap *app.Snapshot) error {
	jsonFrame, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = jsonFrame

	var msgpackFrame []byte
	for c := range h.clients {
		frame := jsonFrame
		if c.format == FormatMsgpack {
			if msgpackFrame == nil {
				if msgpackFrame, err = msgpack.Marshal(snap); err != nil {
					return fmt.Errorf("failed to encode snapshot: %w", err)
				}
			}
			frame = msgpackFrame
		}
		select {
		case c.send <- frame:
		default:
		}
	}
	return nil
}

// Close отключает всех зрителей.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
