// Copyright 2016 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package clog provides the logging interface used by rdfsink packages.
//
// Output goes to the standard library logger on stderr until a backend is
// installed with SetLogger, usually by importing clog/glog.
package clog

import (
	"log"
	"os"
)

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Leveler is implemented by loggers that manage their own verbosity.
type Leveler interface {
	V(level int) bool
	SetV(level int)
}

var logger Logger = newStdlog()

// SetLogger sets the clog logging implementation. A nil logger disables
// logging.
func SetLogger(l Logger) { logger = l }

var verbosity int

// V returns whether the current clog verbosity is at least level.
func V(level int) bool {
	if l, ok := logger.(Leveler); ok {
		return l.V(level)
	}
	return verbosity >= level
}

// SetV sets the clog verbosity level.
func SetV(level int) {
	verbosity = level
	if l, ok := logger.(Leveler); ok {
		l.SetV(level)
	}
}

// Infof logs information level messages. They are dropped when the
// verbosity is negative.
func Infof(format string, args ...interface{}) {
	if logger != nil && V(0) {
		logger.Infof(format, args...)
	}
}

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf logs fatal messages and terminates the program.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
	}
	os.Exit(1)
}

// stdlog wraps the standard library logger, writing to stderr so that
// serialized output on stdout stays clean.
type stdlog struct {
	l *log.Logger
}

func newStdlog() stdlog {
	return stdlog{l: log.New(os.Stderr, "rdfsink: ", log.LstdFlags)}
}

func (s stdlog) Infof(format string, args ...interface{}) { s.l.Printf(format, args...) }
func (s stdlog) Warningf(format string, args ...interface{}) {
	s.l.Printf("WARN: "+format, args...)
}
func (s stdlog) Errorf(format string, args ...interface{}) { s.l.Printf("ERROR: "+format, args...) }
func (s stdlog) Fatalf(format string, args ...interface{}) { s.l.Fatalf("FATAL: "+format, args...) }
