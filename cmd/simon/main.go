package main

import (
	"flag"

	"github.com/golang/glog"

	fx "github.com/robotalks/simon.go/pkg/framework"
	"github.com/robotalks/simon.go/pkg/game"
	"github.com/robotalks/simon.go/pkg/hal"
	"github.com/robotalks/simon.go/pkg/hal/rpi"
	"github.com/robotalks/simon.go/pkg/score"
)

func init() {
	rpi.SetupFlags()
	score.SetupFlags()
	game.SetupFlags()
}

func main() {
	flag.Parse()
	defer glog.Flush()

	board, err := rpi.NewConfig().Open()
	if err != nil {
		hal.Halt(nil, err)
	}
	defer board.Halt()

	store, err := score.NewConfig().Open()
	if err != nil {
		hal.Halt(board, err)
	}
	defer score.Close(store)

	conf := game.NewConfig()
	loop := fx.NewLoop(board).Add(conf.NewController(board, store))
	loop.Interval = conf.TickInterval

	if err := fx.NewRunner().HandleSignals().Go(loop).Wait(); err != nil {
		glog.Errorf("game stopped: %v", err)
	}
}
