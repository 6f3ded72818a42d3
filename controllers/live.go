package controllers

import (
	"cgpa-calculator/models"
	"cgpa-calculator/report"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

const (
	MessageReport = "report"
	MessageClosed = "closed"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type LiveMessage struct {
	Type    string         `json:"type"`
	Payload *models.Report `json:"payload,omitempty"`
}

// envelope is one message for the clients of a workspace, or for target
// alone when it is set.
type envelope struct {
	workspaceID string
	version     int64
	data        []byte
	closing     bool
	target      *client
}

type client struct {
	hub         *Hub
	conn        *websocket.Conn
	send        chan []byte
	workspaceID string
	version     int64
}

// Hub fans reports out to the websocket clients of each workspace. All of
// its state is owned by the Run goroutine. A client never receives a report
// older than one it already has.
type Hub struct {
	clients    map[string]map[*client]bool
	broadcast  chan envelope
	register   chan *client
	unregister chan *client
	done       chan struct{}
	log        *logrus.Logger
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[string]map[*client]bool),
		broadcast:  make(chan envelope, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for id := range h.clients {
				h.drop(id)
			}
			return

		case c := <-h.register:
			if h.clients[c.workspaceID] == nil {
				h.clients[c.workspaceID] = make(map[*client]bool)
			}
			h.clients[c.workspaceID][c] = true
			h.log.WithField("workspace_id", c.workspaceID).Debug("live client registered")

		case c := <-h.unregister:
			if set, ok := h.clients[c.workspaceID]; ok && set[c] {
				h.remove(c)
				h.log.WithField("workspace_id", c.workspaceID).Debug("live client unregistered")
			}

		case e := <-h.broadcast:
			if e.target != nil {
				if h.clients[e.workspaceID][e.target] {
					h.deliver(e.target, e)
					if e.closing && h.clients[e.workspaceID][e.target] {
						h.remove(e.target)
					}
				}
				continue
			}
			for c := range h.clients[e.workspaceID] {
				h.deliver(c, e)
			}
			if e.closing {
				h.drop(e.workspaceID)
			}
		}
	}
}

func (h *Hub) deliver(c *client, e envelope) {
	if !e.closing {
		if e.version <= c.version {
			return
		}
		c.version = e.version
	}
	select {
	case c.send <- e.data:
	default:
		h.remove(c)
	}
}

func (h *Hub) remove(c *client) {
	set := h.clients[c.workspaceID]
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.workspaceID)
	}
}

func (h *Hub) drop(workspaceID string) {
	for c := range h.clients[workspaceID] {
		h.remove(c)
	}
}

func (h *Hub) enqueue(e envelope) {
	select {
	case h.broadcast <- e:
	case <-h.done:
	default:
		h.log.WithField("workspace_id", e.workspaceID).Warn("live broadcast dropped")
	}
}

func reportEnvelope(workspaceID string, rep models.Report) (envelope, error) {
	data, err := json.Marshal(LiveMessage{Type: MessageReport, Payload: &rep})
	if err != nil {
		return envelope{}, err
	}
	return envelope{workspaceID: workspaceID, version: rep.Version, data: data}, nil
}

func closedEnvelope(workspaceID string) envelope {
	data, _ := json.Marshal(LiveMessage{Type: MessageClosed})
	return envelope{workspaceID: workspaceID, data: data, closing: true}
}

// Publish sends rep to every client watching workspaceID. It never blocks.
func (h *Hub) Publish(workspaceID string, rep models.Report) {
	e, err := reportEnvelope(workspaceID, rep)
	if err != nil {
		h.log.WithError(err).Error("marshal live report")
		return
	}
	h.enqueue(e)
}

// Close tells the clients of workspaceID that it is gone and disconnects them.
func (h *Hub) Close(workspaceID string) {
	h.enqueue(closedEnvelope(workspaceID))
}

// sendTo queues e for c alone, waiting for room in the queue.
func (h *Hub) sendTo(c *client, e envelope) {
	e.target = c
	select {
	case h.broadcast <- e:
	case <-h.done:
	}
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.WithError(err).Warn("unexpected websocket close")
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.log.WithError(err).Warn("write live message")
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Live upgrades the request to a websocket that first receives the current
// report and then every report produced by a later edit. The client is
// registered before the snapshot is read, so no edit falls in between.
func (c Controller) Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := workspaceID(r)
		if _, err := c.Store.Load(r.Context(), id); err != nil {
			c.respondError(w, r, err, "Failed to load workspace")
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			c.Log.WithError(err).Warn("websocket upgrade failed")
			return
		}

		cl := &client{
			hub:         c.Hub,
			conn:        conn,
			send:        make(chan []byte, sendBuffer),
			workspaceID: id,
		}
		select {
		case c.Hub.register <- cl:
		case <-c.Hub.done:
			conn.Close()
			return
		}
		go cl.writePump()
		go cl.readPump()

		e, err := c.snapshot(r, id)
		if err != nil {
			c.Log.WithError(err).WithField("workspace_id", id).Warn("live snapshot")
			e = closedEnvelope(id)
		}
		c.Hub.sendTo(cl, e)
	}
}

func (c Controller) snapshot(r *http.Request, id string) (envelope, error) {
	ws, err := c.Store.Load(r.Context(), id)
	if err != nil {
		return envelope{}, err
	}
	rep, err := report.Build(ws, c.Formula)
	if err != nil {
		return envelope{}, err
	}
	return reportEnvelope(id, rep)
}
