package handlers

import (
	"sync"
	"time"

	"car_rental_app_go/logger"
	"car_rental_app_go/middleware"
	"car_rental_app_go/services/searchsync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 16
)

// A nil CheckOrigin rejects cross-origin handshakes
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// syncClient is one open tab listening for date-range-changed messages
type syncClient struct {
	conn *websocket.Conn

	mu     sync.Mutex
	closed bool
	send   chan searchsync.Message
}

func newSyncClient(conn *websocket.Conn) *syncClient {
	return &syncClient{conn: conn, send: make(chan searchsync.Message, sendBufferSize)}
}

// enqueue never blocks the publisher; a full buffer drops the message
func (sc *syncClient) enqueue(msg searchsync.Message) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.closed {
		return
	}
	select {
	case sc.send <- msg:
	default:
		logger.Warn("Search sync client too slow, dropping message")
	}
}

func (sc *syncClient) close() {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.closed {
		sc.closed = true
		close(sc.send)
	}
}

func (sc *syncClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		sc.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-sc.send:
			sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				sc.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sc.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			sc.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sc.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump applies ranges pushed by the tab until the connection ends
func (sc *syncClient) readPump(svc *searchsync.Service) {
	sc.conn.SetReadLimit(maxMessageSize)
	sc.conn.SetReadDeadline(time.Now().Add(pongWait))
	sc.conn.SetPongHandler(func(string) error {
		sc.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg searchsync.Message
		if err := sc.conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WithError(err).Debug("Search sync connection closed")
			}
			return
		}
		if msg.Type != searchsync.MessageDateRangeChanged {
			continue
		}
		if err := svc.Set(msg.Range); err != nil {
			logger.WithError(err).Debug("Ignoring search pushed over websocket")
		}
	}
}

// SearchWebSocketHandler streams the visitor's date-range-changed messages to
// an open tab and accepts ranges pushed from it. The current range is sent
// first so a tab that connects late starts in sync.
func SearchWebSocketHandler(c echo.Context) error {
	svc := middleware.GetSearchSync(c)

	// Headers set by middleware, such as a newly issued visitor cookie, ride on the handshake
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), c.Response().Header())
	if err != nil {
		logger.WithError(err).Debug("Websocket upgrade failed")
		return nil
	}

	client := newSyncClient(conn)
	unsubscribe := svc.Subscribe(client.enqueue)
	client.enqueue(searchsync.NewDateRangeChanged(svc.Get()))

	done := make(chan struct{})
	go func() {
		client.writePump()
		close(done)
	}()

	client.readPump(svc)
	unsubscribe()
	client.close()
	<-done
	return nil
}
