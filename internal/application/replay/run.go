package replay

import (
	"fmt"

	"github.com/younwookim/guyjump/internal/application/system"
)

// Result is the outcome of a headless replay
type Result struct {
	Frames   int
	Jumps    int
	Landings int
	Rewinds  int
	Final    system.GuyView
	Portal   string // target of the portal that ended the run, if any
}

// Run feeds every remaining frame of r into sim, applying recorded tuning
// changes as their frames come up. It stops early when the guy
// touches a portal, since the session continues on another level from there.
func Run(r *Replayer, sim *system.Simulation) (Result, error) {
	var res Result
	for {
		if cfg, ok := r.PendingTuning(); ok {
			if err := sim.Retune(cfg); err != nil {
				return res, fmt.Errorf("replay frame %d: %w", r.CurrentFrame(), err)
			}
		}

		in, ok := r.GetInput()
		if !ok {
			break
		}

		report, err := sim.Step(in)
		if err != nil {
			return res, fmt.Errorf("replay frame %d: %w", r.CurrentFrame()-1, err)
		}
		res.Frames++
		if report.Launched {
			res.Jumps++
		}
		if report.Landed {
			res.Landings++
		}
		if report.Rewound {
			res.Rewinds++
		}
		if report.Portal != nil {
			res.Portal = report.Portal.Target
			break
		}
	}
	res.Final = sim.View()
	return res, nil
}
