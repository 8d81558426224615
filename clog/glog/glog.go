// Package glog routes clog output through github.com/golang/glog.
// Importing it for side effects installs the backend.
package glog

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/golang/glog"

	"github.com/cayleygraph/rdfsink/clog"
)

func init() {
	clog.SetLogger(Logger{})
}

// Logger is a clog.Logger and clog.Leveler backed by glog.
type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(3, fmt.Sprintf(format, args...))
}

func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}

// SetV changes the glog -v flag, which is registered on the default flag set.
func (Logger) SetV(v int) {
	f := flag.Lookup("v")
	if f == nil {
		return
	}
	if err := f.Value.Set(strconv.Itoa(v)); err != nil {
		glog.Warningf("cannot change log level to %d: %v", v, err)
	}
}
