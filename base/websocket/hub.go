// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package websocket

import (
	"log/slog"
	"net/http"
	"sync"

	"cogentcore.org/webgl/base/errors"
	"github.com/gorilla/websocket"
)

// Hub is an [http.Handler] that upgrades requests to WebSocket
// connections and keeps them open, so that messages can be sent to all
// of them with [Hub.Broadcast]. Messages from clients are discarded.
type Hub struct {
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHub returns a new [Hub].
func NewHub() *Hub {
	return &Hub{conns: map[*websocket.Conn]struct{}{}}
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	slog.Debug("websocket: client connected", "remote", r.RemoteAddr, "clients", n)

	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
	conn.Close()
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Broadcast sends the message to every connected client. Clients that
// cannot be written to are dropped. It returns the number of clients
// the message was sent to.
func (h *Hub) Broadcast(typ MessageTypes, msg []byte) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	sent := 0
	for conn := range h.conns {
		if err := conn.WriteMessage(int(typ), msg); err != nil {
			slog.Debug("websocket: dropping client", "err", err)
			delete(h.conns, conn)
			conn.Close()
			continue
		}
		sent++
	}
	return sent
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
		conn.Close()
		delete(h.conns, conn)
	}
}
