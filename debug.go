package easel

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugStats holds per-tick timings. Only populated when LoopConfig.Debug
// is true.
type debugStats struct {
	pollTime     time.Duration
	inputTime    time.Duration
	callbackTime time.Duration
	throttleTime time.Duration
	presentTime  time.Duration
	edgeCount    int
}

// debugOut is where debug lines go. Tests swap it out.
var debugOut io.Writer = os.Stderr

// debugLog prints timing stats for one tick.
func (l *Loop) debugLog(stats debugStats) {
	if !l.cfg.Debug {
		return
	}
	busy := stats.pollTime + stats.inputTime + stats.callbackTime + stats.presentTime
	_, _ = fmt.Fprintf(debugOut,
		"[easel] frame %d | poll: %v | input: %v | update: %v | throttle: %v | present: %v | busy: %v\n",
		l.ctx.frame, stats.pollTime, stats.inputTime, stats.callbackTime,
		stats.throttleTime, stats.presentTime, busy)
	if stats.edgeCount > 0 {
		_, _ = fmt.Fprintf(debugOut, "[easel] frame %d | input edges: %d\n", l.ctx.frame, stats.edgeCount)
	}
	if l.cfg.TPS > 0 {
		if budget := time.Second / time.Duration(l.cfg.TPS); busy > budget {
			_, _ = fmt.Fprintf(debugOut, "[easel] warning: frame %d took %v, budget %v\n",
				l.ctx.frame, busy, budget)
		}
	}
}
