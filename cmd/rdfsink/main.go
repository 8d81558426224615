// Command rdfsink converts N-Quads and JSON-LD documents into N-Triples,
// RDF/XML or JSON-LD.
package main

import (
	"os"

	_ "github.com/cayleygraph/rdfsink/clog/glog"

	"github.com/cayleygraph/rdfsink/cmd/rdfsink/command"
)

func main() {
	if err := command.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
