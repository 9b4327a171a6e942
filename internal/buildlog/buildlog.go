// Package buildlog provides build-time progress logging and phase
// timers for the distmesh relaxation engine, grounded on the teacher's
// recast.BuildContext: a single concrete type, no logging/timer
// interface, enable/disable flags, and message categories that are
// only appended to, never parsed.
package buildlog

import (
	"fmt"
	"time"
)

// Category distinguishes the kind of a logged message.
type Category int

const (
	Progress Category = 1 + iota
	Warning
	Error
)

const maxMessages = 1000

// Phase names a distmesh.Engine.Update phase whose wall-clock time is
// tracked separately.
type Phase int

const (
	TimerScale Phase = iota
	TimerForces
	TimerIntegrate
	TimerProject
	TimerTriangulate
	maxPhases
)

// Context accumulates log messages and per-phase timings across a
// relaxation run. A nil *Context is valid everywhere it is accepted:
// every method is a no-op on a nil receiver, mirroring the teacher's
// `ctx != nil` convention at every call site rather than forcing
// every caller to construct one.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	messages    [maxMessages]string
	numMessages int

	startTime [maxPhases]time.Time
	accTime   [maxPhases]time.Duration
}

// New returns a Context with logging and timers enabled according to
// state.
func New(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

// Progressf logs a progress message.
func (ctx *Context) Progressf(format string, v ...interface{}) {
	ctx.log(Progress, format, v...)
}

// Warningf logs a warning message.
func (ctx *Context) Warningf(format string, v ...interface{}) {
	ctx.log(Warning, format, v...)
}

// Errorf logs an error message.
func (ctx *Context) Errorf(format string, v ...interface{}) {
	ctx.log(Error, format, v...)
}

func (ctx *Context) log(cat Category, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	prefix := "PROG "
	switch cat {
	case Warning:
		prefix = "WARN "
	case Error:
		prefix = "ERR "
	}
	ctx.messages[ctx.numMessages] = prefix + fmt.Sprintf(format, v...)
	ctx.numMessages++
}

// ResetLog clears all accumulated log messages.
func (ctx *Context) ResetLog() {
	if ctx == nil || !ctx.logEnabled {
		return
	}
	ctx.numMessages = 0
}

// LogCount returns the number of accumulated log messages.
func (ctx *Context) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// LogText returns the i'th log message.
func (ctx *Context) LogText(i int) string {
	if ctx == nil {
		return ""
	}
	return ctx.messages[i]
}

// StartTimer starts the timer for phase.
func (ctx *Context) StartTimer(phase Phase) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[phase] = time.Now()
}

// StopTimer stops the timer for phase, accumulating the elapsed time
// since the matching StartTimer call.
func (ctx *Context) StopTimer(phase Phase) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.accTime[phase] += time.Since(ctx.startTime[phase])
}

// AccumulatedTime returns the total time spent in phase across all
// StartTimer/StopTimer brackets, or zero if timers are disabled.
func (ctx *Context) AccumulatedTime(phase Phase) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[phase]
}

// ResetTimers clears all accumulated phase timings.
func (ctx *Context) ResetTimers() {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	for i := range ctx.accTime {
		ctx.accTime[i] = 0
	}
}

// DumpLog prints the header followed by every accumulated log message
// to stdout.
func (ctx *Context) DumpLog(format string, args ...interface{}) {
	if ctx == nil {
		return
	}
	fmt.Printf(format+"\n", args...)
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}
