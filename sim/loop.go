package sim

import (
	"time"

	"github.com/rs/zerolog"
)

// Summary describes a finished run.
type Summary struct {
	Frames   uint64
	Steps    uint64
	TopSpeed float64
	Airtime  float64 // seconds spent airborne
	Jumps    int     // grounded to airborne transitions
}

// Loop runs a Driver against an InputSource at a fixed frame rate, either
// paced by a ticker or as fast as possible.
type Loop struct {
	driver   *Driver
	source   InputSource
	tps      int
	realtime bool
	log      zerolog.Logger

	stopChan chan struct{}
}

func NewLoop(driver *Driver, source InputSource, tps int, realtime bool, log zerolog.Logger) *Loop {
	if tps <= 0 {
		tps = 60
	}
	return &Loop{
		driver:   driver,
		source:   source,
		tps:      tps,
		realtime: realtime,
		log:      log,
		stopChan: make(chan struct{}),
	}
}

// Run plays frames frames, or until Stop is called.
func (l *Loop) Run(frames int) Summary {
	var tick <-chan time.Time
	if l.realtime {
		ticker := time.NewTicker(time.Second / time.Duration(l.tps))
		defer ticker.Stop()
		tick = ticker.C
	}

	l.log.Info().Int("tps", l.tps).Bool("realtime", l.realtime).Int("frames", frames).Msg("Sim loop started")

	dt := 1 / float64(l.tps)
	var sum Summary
	wasGrounded := l.driver.Vehicle().IsGrounded()

	for i := 0; i < frames; i++ {
		if tick != nil {
			select {
			case <-l.stopChan:
				l.log.Info().Int("frame", i).Msg("Sim loop stopped")
				return l.finish(sum)
			case <-tick:
			}
		} else {
			select {
			case <-l.stopChan:
				l.log.Info().Int("frame", i).Msg("Sim loop stopped")
				return l.finish(sum)
			default:
			}
		}

		t := float64(i) * dt
		l.driver.Frame(dt, l.source.Input(t))

		v := l.driver.Vehicle()
		if s := v.CurrentSpeed(); s > sum.TopSpeed {
			sum.TopSpeed = s
		}
		grounded := v.IsGrounded()
		if !grounded {
			sum.Airtime += dt
		}
		if wasGrounded && !grounded {
			sum.Jumps++
		}
		wasGrounded = grounded

		if i%l.tps == 0 {
			pos := v.Position()
			l.log.Debug().
				Float64("t", t).
				Float64("x", pos.X()).
				Float64("y", pos.Y()).
				Float64("speed", v.CurrentSpeed()).
				Bool("grounded", grounded).
				Msg("telemetry")
		}
	}

	return l.finish(sum)
}

func (l *Loop) finish(sum Summary) Summary {
	sum.Frames, sum.Steps = l.driver.Counters()
	l.log.Info().
		Uint64("frames", sum.Frames).
		Uint64("steps", sum.Steps).
		Float64("topSpeed", sum.TopSpeed).
		Float64("airtime", sum.Airtime).
		Int("jumps", sum.Jumps).
		Msg("Sim loop finished")
	return sum
}

// Stop ends a running loop. It must be called at most once.
func (l *Loop) Stop() {
	close(l.stopChan)
}
