// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
}

func NewServer(addr string, upgrader websocket.Upgrader) *Server {
	return &Server{
		addr:     addr,
		upgrader: upgrader,
	}
}

// serveWs handles websocket requests from the peer
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Errorln("upgrade:", err)
		return
	}
	defer conn.Close()
	log.Infof("peer connected: %s", conn.RemoteAddr())

	hub := NewHub()
	hub.conn = conn
	go hub.handleRequest()
	go hub.handleResponse()

	for {
		var q Query
		if err := conn.ReadJSON(&q); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Errorln("read:", err)
			}
			close(hub.query)
			return
		}
		log.Debugf("query: %+v", q)
		hub.query <- q
	}
}

func (s *Server) Serve() error {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		s.serveWs(w, r)
	})
	log.Infof("listening on %s", s.addr)
	return http.ListenAndServe(s.addr, nil)
}
