// Package rlog provides the renderer's ambient logging, ported from the
// host engine's Logger interface and reduced to the renderer's own concerns
// (asset load, viewport resize, binning diagnostics).
package rlog

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Logger is implemented by anything that wants to observe renderer
// diagnostics. A Renderer built from a Config with a nil Logger uses a Nop
// logger.
type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Default is a minimal stdlib-backed Logger: debug lines go to stdout,
// warnings and errors to stderr.
type Default struct {
	mu     sync.Mutex
	debug  bool
	prefix string
	out    *log.Logger
	err    *log.Logger
}

// New builds a Default logger with the given prefix (e.g. "swrast").
func New(prefix string, debug bool) *Default {
	flags := log.LstdFlags | log.Lmicroseconds
	return &Default{
		debug:  debug,
		prefix: prefix,
		out:    log.New(os.Stdout, "", flags),
		err:    log.New(os.Stderr, "", flags),
	}
}

func (l *Default) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Default) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *Default) prefixf(level, format string, args ...any) string {
	if l.prefix != "" {
		return fmt.Sprintf("[%s] %s: %s", l.prefix, level, fmt.Sprintf(format, args...))
	}
	return fmt.Sprintf("%s: %s", level, fmt.Sprintf(format, args...))
}

func (l *Default) Debugf(format string, args ...any) {
	l.mu.Lock()
	dbg := l.debug
	l.mu.Unlock()
	if !dbg {
		return
	}
	l.out.Print(l.prefixf("DEBUG", format, args...))
}

func (l *Default) Infof(format string, args ...any) {
	l.out.Print(l.prefixf("INFO", format, args...))
}

func (l *Default) Warnf(format string, args ...any) {
	l.err.Print(l.prefixf("WARN", format, args...))
}

func (l *Default) Errorf(format string, args ...any) {
	l.err.Print(l.prefixf("ERROR", format, args...))
}

type nop struct{}

// NewNop returns a Logger that discards everything. Never nil.
func NewNop() Logger { return &nop{} }

func (nop) DebugEnabled() bool                { return false }
func (nop) SetDebug(enabled bool)             {}
func (nop) Debugf(format string, args ...any) {}
func (nop) Infof(format string, args ...any)  {}
func (nop) Warnf(format string, args ...any)  {}
func (nop) Errorf(format string, args ...any) {}
