package main

import (
	"os"

	"rpg/cmd/rpg/cmd"

	"github.com/golang/glog"
)

func main() {
	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
