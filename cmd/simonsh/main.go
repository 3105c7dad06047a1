package main

import (
	"github.com/robotalks/simon.go/pkg/cli/sh"
	"github.com/robotalks/simon.go/pkg/score"

	_ "github.com/robotalks/simon.go/pkg/cli/cmds/score"
)

//go-build: CGO_ENABLED=0

func init() {
	score.SetupFlags()
}

func main() {
	sh.Main()
}
