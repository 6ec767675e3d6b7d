// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocket message types.
const (
	MsgSolve  = "solve"
	MsgResult = "result"
	MsgError  = "error"
)

// Envelope is the WebSocket message wrapper.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func newEnvelope(typ string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: typ, Payload: data}, nil
}

// client is one WebSocket connection. Each "solve" message is answered on
// the same connection; there is no shared state between clients.
type client struct {
	srv    *Server
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("ws upgrade", "err", err)
		return
	}
	c := &client{
		srv:    s,
		conn:   conn,
		send:   make(chan []byte, 16),
		logger: s.logger.With("remote", r.RemoteAddr),
	}
	go c.writePump()
	c.readPump()
}

// readPump decodes incoming envelopes and queues the replies. It closes
// send on exit, which stops writePump.
func (c *client) readPump() {
	defer close(c.send)
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("ws read", "err", err)
			}
			return
		}
		var env Envelope
		if err := json.Unmarshal(message, &env); err != nil {
			c.reply(MsgError, checkoutResp{Error: "invalid JSON: " + err.Error()})
			continue
		}
		c.handle(env)
	}
}

func (c *client) handle(env Envelope) {
	if env.Type != MsgSolve {
		c.reply(MsgError, checkoutResp{Error: "unknown message type " + env.Type})
		return
	}
	var req checkoutReq
	if err := json.Unmarshal(env.Payload, &req); err != nil {
		c.reply(MsgError, checkoutResp{Error: "invalid payload: " + err.Error()})
		return
	}
	resp, err := c.srv.solve(req)
	if err != nil {
		c.reply(MsgError, checkoutResp{Error: err.Error()})
		return
	}
	c.reply(MsgResult, resp)
}

func (c *client) reply(typ string, payload any) {
	env, err := newEnvelope(typ, payload)
	if err != nil {
		c.logger.Error("ws marshal", "err", err)
		return
	}
	data, err := json.Marshal(env)
	if err != nil {
		c.logger.Error("ws marshal", "err", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.logger.Warn("ws send buffer full, dropping message", "type", typ)
	}
}

// writePump writes queued messages and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
