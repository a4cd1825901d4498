// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"fmt"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/cpmech/gosteam/if97"
	"github.com/cpmech/gosteam/inp"
	"github.com/cpmech/gosteam/out"
)

// Query is one request from the peer. T is in [°C] and P in [Pa].
// Type is either "point" (properties at T and P) or "sat" (saturation
// data at T).
type Query struct {
	Type string  `json:"type"`
	Tag  string  `json:"tag"`
	T    float64 `json:"T"`
	P    float64 `json:"P"`
}

// Reply is the answer to one Query
type Reply struct {
	Type   string `json:"type"`
	Tag    string `json:"tag"`
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Region string `json:"region,omitempty"`

	// point results
	H  float64 `json:"h"`  // [kJ/kg]
	S  float64 `json:"s"`  // [kJ/kg·K]
	V  float64 `json:"v"`  // [m³/kg]
	Cp float64 `json:"cp"` // [kJ/kg·K]

	// saturation results
	Psat float64 `json:"psat"` // [Pa]
	Hliq float64 `json:"hliq"` // [kJ/kg]
	Hvap float64 `json:"hvap"` // [kJ/kg]
}

// Hub pumps queries from one connection through the evaluator and
// writes the replies back.
type Hub struct {
	conn  *websocket.Conn
	query chan Query
	reply chan Reply
}

// NewHub returns a new hub with buffered channels
func NewHub() *Hub {
	return &Hub{
		query: make(chan Query, 10),
		reply: make(chan Reply, 10),
	}
}

func (h *Hub) handleRequest() {
	for q := range h.query {
		h.reply <- Answer(q)
	}
	close(h.reply)
}

func (h *Hub) handleResponse() {
	for r := range h.reply {
		if err := h.conn.WriteJSON(&r); err != nil {
			log.Errorln("write:", err)
		}
	}
}

// Answer evaluates one query. The region models panic on nonsense
// input such as negative pressures; the panic is converted into an
// error reply here.
func Answer(q Query) (r Reply) {
	r = Reply{Type: q.Type + "Result", Tag: q.Tag}
	defer func() {
		if err := recover(); err != nil {
			r.Valid = false
			r.Error = fmt.Sprint(err)
		}
	}()
	switch q.Type {
	case "point":
		b := &inp.Batch{Points: []*inp.Point{{Tag: q.Tag, T: q.T, P: q.P}}}
		rows, err := out.Evaluate(b)
		if err != nil {
			r.Error = err.Error()
			return
		}
		row := rows[0]
		r.Region = row.Region.String()
		r.Valid = row.Valid
		if !row.Valid {
			r.Error = "point is outside the valid regions"
			return
		}
		r.H, r.S, r.V, r.Cp = row.H, row.S, row.V, row.Cp
	case "sat":
		p, err := if97.Psat(q.T)
		if err != nil {
			r.Error = err.Error()
			return
		}
		hl, err := if97.Hliq(q.T)
		if err != nil {
			r.Error = err.Error()
			return
		}
		hv, err := if97.Hvap(q.T)
		if err != nil {
			r.Error = err.Error()
			return
		}
		r.Valid = true
		r.Region = if97.Region4.String()
		r.Psat, r.Hliq, r.Hvap = p, hl, hv
	default:
		r.Error = fmt.Sprintf("no such query type: %q", q.Type)
	}
	return
}
