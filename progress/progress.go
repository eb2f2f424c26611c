package progress

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"

	"vigovia/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The wizard frontend runs on its own origin.
		return true
	},
}

// Event is one generation status update pushed to the session's wizard.
type Event struct {
	Stage string `json:"stage"`
	At    int64  `json:"at"`
}

// Feed pushes export pipeline stages to subscribed wizard clients, keyed by
// session. Delivery is best-effort; the pipeline never waits on it.
type Feed struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

func NewFeed() *Feed {
	return &Feed{subscribers: make(map[string][]*websocket.Conn)}
}

// HandleWS subscribes the caller to its session's generation events. The
// session token rides in the "token" query parameter since browsers cannot
// set websocket headers.
func (f *Feed) HandleWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sessionID, err := middleware.SessionFromToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the handshake error response.
		log.Printf("progress upgrade: %v", err)
		return
	}

	f.mu.Lock()
	f.subscribers[sessionID] = append(f.subscribers[sessionID], conn)
	f.mu.Unlock()

	for {
		// Keeps the connection alive until the client disconnects.
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	f.mu.Lock()
	conns := f.subscribers[sessionID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	f.subscribers[sessionID] = newList
	f.mu.Unlock()

	conn.Close()
}

// Publish broadcasts a stage update to every subscriber of the session.
func (f *Feed) Publish(sessionID, stage string) {
	data, err := json.Marshal(Event{Stage: stage, At: time.Now().Unix()})
	if err != nil {
		log.Printf("progress marshal: %v", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	conns := f.subscribers[sessionID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	f.subscribers[sessionID] = newList
}
