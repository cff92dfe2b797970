package services

import (
	"log"
	"net/http"
	"sync"
	"time"

	"tasks-pro/taskspro/broker"
	"tasks-pro/taskspro/config"
	"tasks-pro/taskspro/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketServiceInterface defines the operations provided by the WebSocket service
type WebSocketServiceInterface interface {
	Start(cfg config.Config)
	Stop()
	HandleConnection(c *gin.Context)
	Dispatch(data []byte)
}

// Client represents a connected WebSocket client
type Client struct {
	ID     string
	UserID uuid.UUID
	Role   models.Role
	Conn   *websocket.Conn
	Send   chan []byte
}

// WebSocketService pushes task events to connected clients. Each event is
// delivered only to the task's owner and to connected administrators.
type WebSocketService struct {
	clients      map[string]*Client
	register     chan *Client
	unregister   chan *Client
	clientsMutex sync.RWMutex

	upgrader websocket.Upgrader
	consumer *broker.Consumer

	isRunning bool
	stopChan  chan struct{}
}

// NewWebSocketService creates a new WebSocket service
func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		stopChan: make(chan struct{}),
	}
}

// Start subscribes to task events and begins the hub loop.
func (ws *WebSocketService) Start(cfg config.Config) {
	if ws.isRunning {
		return
	}

	consumer, err := broker.InitConsumer(cfg, []string{broker.TaskSubjects}, "websocket-service")
	if err != nil {
		log.Printf("Warning: WebSocket service running without broker events: %v", err)
	} else {
		ws.consumer = consumer
	}

	ws.isRunning = true
	go ws.run()
	log.Println("WebSocket service started")
}

// Stop halts the hub loop and closes all connections.
func (ws *WebSocketService) Stop() {
	if !ws.isRunning {
		return
	}
	ws.isRunning = false
	close(ws.stopChan)

	if ws.consumer != nil {
		ws.consumer.Close()
	}

	ws.clientsMutex.Lock()
	for id, client := range ws.clients {
		close(client.Send)
		client.Conn.Close()
		delete(ws.clients, id)
	}
	ws.clientsMutex.Unlock()
	log.Println("WebSocket service stopped")
}

func (ws *WebSocketService) run() {
	var messages chan *nats.Msg
	if ws.consumer != nil {
		messages = ws.consumer.GetMessageChannel()
	}

	for {
		select {
		case client := <-ws.register:
			ws.clientsMutex.Lock()
			ws.clients[client.ID] = client
			ws.clientsMutex.Unlock()
			log.Printf("WebSocket client %s connected (user %s)", client.ID, client.UserID)

		case client := <-ws.unregister:
			ws.clientsMutex.Lock()
			if _, ok := ws.clients[client.ID]; ok {
				delete(ws.clients, client.ID)
				close(client.Send)
			}
			ws.clientsMutex.Unlock()

		case msg := <-messages:
			ws.Dispatch(msg.Data)

		case <-ws.stopChan:
			return
		}
	}
}

// Dispatch forwards an encoded event to every entitled client.
func (ws *WebSocketService) Dispatch(data []byte) {
	var event models.EventMessage
	if err := event.FromJSON(data); err != nil {
		log.Printf("Failed to decode broker event: %v", err)
		return
	}

	ws.clientsMutex.RLock()
	defer ws.clientsMutex.RUnlock()

	for _, client := range ws.clients {
		if client.Role != models.RoleAdmin && client.UserID.String() != event.OwnerID {
			continue
		}
		select {
		case client.Send <- data:
		default:
			// Slow client, skip this event rather than block the hub
		}
	}
}

// HandleConnection upgrades an authenticated request to a WebSocket. The
// auth middleware has already resolved the caller's identity into context.
func (ws *WebSocketService) HandleConnection(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	role, _ := c.Get("role")

	conn, err := ws.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	client := &Client{
		ID:     uuid.New().String(),
		UserID: userID.(uuid.UUID),
		Role:   role.(models.Role),
		Conn:   conn,
		Send:   make(chan []byte, 64),
	}

	ws.register <- client

	go ws.writePump(client)
	go ws.readPump(client)
}

func (ws *WebSocketService) writePump(client *Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		client.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (ws *WebSocketService) readPump(client *Client) {
	defer func() {
		// Stop() tears the hub loop down, so the unregister send must not
		// outlive it.
		select {
		case ws.unregister <- client:
		case <-ws.stopChan:
		}
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

var WebSocketServiceInstance WebSocketServiceInterface
