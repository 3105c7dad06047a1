package main

import (
	"flag"
	"log"

	fx "github.com/robotalks/simon.go/pkg/framework"
	"github.com/robotalks/simon.go/pkg/game"
	"github.com/robotalks/simon.go/pkg/hal/tui"
	"github.com/robotalks/simon.go/pkg/score"
)

//go-build: CGO_ENABLED=0

func init() {
	tui.SetupFlags()
	score.SetupFlags()
	game.SetupFlags()
}

func main() {
	flag.Parse()

	board := tui.NewConfig().NewBoard()
	store := score.NewConfig().MustOpen()
	defer score.Close(store)

	conf := game.NewConfig()
	loop := fx.NewLoop(board).Add(conf.NewController(board, store))
	loop.Interval = conf.TickInterval

	err := fx.NewRunner().
		HandleSignals().
		StopOnExit().
		Go(fx.NamedRun("ui", board), fx.NamedRun("game", loop)).
		Wait()
	if err != nil {
		log.Fatalln(err)
	}
}
