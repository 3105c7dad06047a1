package score

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/simon.go/pkg/cli/sh"
	"github.com/robotalks/simon.go/pkg/score"
)

// Record is the stored high score as seen by the game.
type Record struct {
	Raw   uint32 `json:"raw"`
	Score uint32 `json:"score"`
	Valid bool   `json:"valid"`
}

func (r Record) String() string {
	if !r.Valid {
		return fmt.Sprintf("invalid record %#x, high score 0", r.Raw)
	}
	return fmt.Sprintf("high score %d", r.Score)
}

// ReadRecord reads the raw record and its effective value.
func ReadRecord(s score.Store) (Record, error) {
	raw, err := s.ReadScoreRecord()
	if err != nil {
		return Record{}, err
	}
	rec := Record{Raw: raw, Valid: raw <= score.SaneMax}
	if rec.Valid {
		rec.Score = raw
	}
	return rec, nil
}

// ParseScore parses a high score accepted by the game.
func ParseScore(arg string) (uint32, error) {
	v, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", arg)
	}
	if v > score.SaneMax {
		return 0, fmt.Errorf("score %d above %d", v, score.SaneMax)
	}
	return uint32(v), nil
}

func show(c *ishell.Context) {
	s := sh.ShellFrom(c)
	rec, err := ReadRecord(s.Store)
	if err != nil {
		c.Err(err)
		return
	}
	s.Print(c, rec)
}

func write(c *ishell.Context, v uint32) {
	if err := score.Save(sh.ShellFrom(c).Store, v); err != nil {
		c.Err(err)
		return
	}
	show(c)
}

var (
	// ShowCmd prints the stored high score.
	ShowCmd = ishell.Cmd{
		Name:    "show",
		Aliases: []string{"s"},
		Help:    "",
		Func:    sh.MustBeOpen(show),
	}

	// SetCmd overwrites the high score.
	SetCmd = ishell.Cmd{
		Name: "set",
		Help: "SCORE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("score expected"))
				return
			}
			v, err := ParseScore(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			write(c, v)
		}),
	}

	// ResetCmd sets the high score to 0.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			write(c, 0)
		}),
	}

	// EraseCmd erases the record, as a fresh device.
	EraseCmd = ishell.Cmd{
		Name: "erase",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if err := score.Erase(sh.ShellFrom(c).Store); err != nil {
				c.Err(err)
				return
			}
			show(c)
		}),
	}
)

func init() {
	sh.AddCmds(
		&ShowCmd,
		&SetCmd,
		&ResetCmd,
		&EraseCmd,
	)
}
