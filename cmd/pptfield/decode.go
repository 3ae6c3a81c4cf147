package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"github.com/wippyai/pptfields/stream"
)

var (
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

// decodeResult is the outcome of running one decoder over a byte string.
type decodeResult struct {
	value    any
	err      error
	consumed int
	total    int
}

// parseHex accepts hex digits with optional whitespace and 0x prefixes.
func parseHex(s string) ([]byte, error) {
	var b strings.Builder
	for _, tok := range strings.Fields(s) {
		tok = strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		b.WriteString(tok)
	}
	data, err := hex.DecodeString(b.String())
	if err != nil {
		return nil, fmt.Errorf("parse hex: %w", err)
	}
	return data, nil
}

func runDecoder(k decoderKind, data []byte, n int) decodeResult {
	r := stream.NewBytesReader(data)
	if k.sized && n < 0 {
		n = len(data)
	}
	v, err := k.decode(r, n)
	return decodeResult{value: v, err: err, consumed: r.Position(), total: len(data)}
}

type printer struct {
	w     io.Writer
	color bool
	dump  bool
}

func (p printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p printer) result(kind string, res decodeResult) {
	fmt.Fprintf(p.w, "%s %s\n", p.style(labelStyle, "kind:"), kind)
	fmt.Fprintf(p.w, "%s %d of %d bytes\n", p.style(labelStyle, "consumed:"), res.consumed, res.total)
	if res.err != nil {
		fmt.Fprintf(p.w, "%s %s\n", p.style(labelStyle, "error:"), p.style(errorStyle, res.err.Error()))
		return
	}
	fmt.Fprintf(p.w, "%s %s\n", p.style(labelStyle, "value:"), p.style(valueStyle, formatValue(res.value)))
	if p.dump {
		p.dumpValue(res.value)
	}
}

func (p printer) dumpValue(v any) {
	spew.Fdump(p.w, v)
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%+v", v)
	}
}
