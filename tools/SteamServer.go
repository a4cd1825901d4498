// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// SteamServer serves water and steam properties over a websocket.
// Peers connect to /ws and send JSON queries such as
//
//	{"type":"point", "tag":"feedwater", "T":25, "P":101325}
//	{"type":"sat", "tag":"boiler", "T":100}
//
// and receive one JSON reply per query.
package main

import (
	"flag"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/cpmech/gosteam/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	cfgfn := flag.String("config", "config.ini", "path to the configuration file")
	flag.Parse()

	cfg := server.LoadConfig(*cfgfn)
	cfg.Apply()

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(cfg.Addr, upgrader)
	if err := s.Serve(); err != nil {
		log.Fatalln("serve:", err)
	}
}
