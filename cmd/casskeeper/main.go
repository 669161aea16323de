package main

import (
	"context"
	"log"
	"os"

	"github.com/casskeeper/casskeeper/pkg/cmd"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	v := cmd.Version{Version: version, Commit: commit, Date: date}
	if err := cmd.Run(context.Background(), v, os.Args); err != nil {
		log.Fatal(err)
	}
}
