package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/zkzk-trade/goapi/base/ctx"
	"github.com/zkzk-trade/goapi/base/delivery"
	"github.com/zkzk-trade/goapi/base/state"
)

const (
	pingPeriod = 30 * time.Second
	pongWait   = 60 * time.Second
	writeWait  = 10 * time.Second
	// changes a client may lag behind before it is dropped
	backlog = 256
)

const (
	MessageSnapshot = "snapshot"
	MessageChange   = "change"
)

// Message is one frame of the push stream
type Message struct {
	Type  string                 `json:"type"`
	State map[string]interface{} `json:"state,omitempty"`
	Key   string                 `json:"key,omitempty"`
	Value interface{}            `json:"value,omitempty"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the gateway is bound to the local wallet, browsers from any origin may watch it
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscriber buffers the changes for one client. overflow is closed once the buffer is full,
// store writers may hit it concurrently.
type subscriber struct {
	changes  chan state.Change
	overflow chan struct{}
	once     sync.Once
}

func newSubscriber(size int) *subscriber {
	return &subscriber{
		changes:  make(chan state.Change, size),
		overflow: make(chan struct{}),
	}
}

func (s *subscriber) push(ch state.Change) {
	select {
	case s.changes <- ch:
	default:
		s.once.Do(func() { close(s.overflow) })
	}
}

type handler struct {
	store *state.Store
}

func New(e *echo.Echo, store *state.Store) {
	h := &handler{store}

	e.GET("/state", h.getState)
	e.GET("/ws", h.stream)
}

func (h *handler) getState(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.store.Snapshot())
}

// stream sends the current state once, then every change in write order
func (h *handler) stream(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctx.WithField("err", err).Warn("upgrader.Upgrade failed")
		return nil
	}
	defer conn.Close()

	sub := newSubscriber(backlog)
	cancel := h.store.SubscribeAll(sub.push)
	defer cancel()

	closed := make(chan struct{})
	go h.readPump(conn, closed)

	if err := h.write(conn, Message{Type: MessageSnapshot, State: h.store.Snapshot()}); err != nil {
		ctx.WithField("err", err).Warn("write snapshot failed")
		return nil
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case ch := <-sub.changes:
			if err := h.write(conn, Message{Type: MessageChange, Key: ch.Key, Value: ch.Value}); err != nil {
				ctx.WithField("err", err).Warn("write change failed")
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		case <-sub.overflow:
			ctx.Warn("client too slow, dropping")
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "too slow"), time.Now().Add(writeWait))
			return nil
		case <-closed:
			return nil
		}
	}
}

func (h *handler) write(conn *websocket.Conn, m Message) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(m)
}

// readPump drains the client until it goes away, the stream is one way
func (h *handler) readPump(conn *websocket.Conn, closed chan struct{}) {
	defer close(closed)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
