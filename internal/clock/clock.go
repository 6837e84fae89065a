package clock

import "time"

// NowFunc returns current time. Override in tests for determinism.
var NowFunc = time.Now

// Now returns NowFunc().
func Now() time.Time { return NowFunc() }

// Since returns the duration elapsed from started according to NowFunc.
func Since(started time.Time) time.Duration { return NowFunc().Sub(started) }
