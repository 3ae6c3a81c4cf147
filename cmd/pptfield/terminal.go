package main

import (
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/wippyai/pptfields/config"
)

var stdoutIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// useColor resolves the output.color setting against stdout.
func useColor(mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal)
	}
}
