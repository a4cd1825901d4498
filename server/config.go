// Copyright 2016 The Gosteam Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Config holds the server settings
type Config struct {
	Addr     string // listen address
	LogLevel string // logrus level name
}

// LoadConfig reads the settings from an ini file. Missing file or
// missing keys fall back to the defaults.
func LoadConfig(fn string) Config {
	cfg := Config{
		Addr:     ":9000",
		LogLevel: "info",
	}
	file, err := ini.Load(fn)
	if err != nil {
		log.Warnf("cannot read config file %q, using defaults: %v", fn, err)
		return cfg
	}
	cfg.Addr = file.Section("server").Key("Addr").MustString(cfg.Addr)
	cfg.LogLevel = file.Section("server").Key("LogLevel").MustString(cfg.LogLevel)
	return cfg
}

// Apply sets the global log level
func (o Config) Apply() {
	lvl, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		log.Warnf("unknown log level %q, using info", o.LogLevel)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
