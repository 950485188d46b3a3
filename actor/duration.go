package actor

import "time"

// Duration constructors mirroring the source's secs/millis/.../days helpers,
// kept around so call sites read the same as the reference implementation.
func Days(n int64) time.Duration    { return time.Duration(n) * 24 * time.Hour }
func Hours(n int64) time.Duration   { return time.Duration(n) * time.Hour }
func Minutes(n int64) time.Duration { return time.Duration(n) * time.Minute }
func Secs(n int64) time.Duration    { return time.Duration(n) * time.Second }
func Millis(n int64) time.Duration  { return time.Duration(n) * time.Millisecond }
func Micros(n int64) time.Duration  { return time.Duration(n) * time.Microsecond }
func Nanos(n int64) time.Duration   { return time.Duration(n) }
