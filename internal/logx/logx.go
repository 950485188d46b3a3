// Package logx is a thin shim around the standard log package. The teacher
// repo (lguibr/pongo's bollywood engine) never reaches for a structured
// logger either — it logs with bare fmt.Printf/log.Printf — so the core
// keeps that same register instead of introducing zap/zerolog for a
// handful of diagnostic prints.
package logx

import "log"

var std = log.Default()

func Printf(format string, args ...any) {
	std.Printf(format, args...)
}
