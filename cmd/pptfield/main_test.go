package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/pptfields/atom"
	"github.com/wippyai/pptfields/config"
	ferrors "github.com/wippyai/pptfields/errors"
	"github.com/wippyai/pptfields/field"
	"github.com/wippyai/pptfields/stream"
)

func TestParseHex(t *testing.T) {
	got, err := parseHex("01 0x02\tff\n0A")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0xFF, 0x0A}, got)

	got, err = parseHex("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseHex("abc")
	assert.Error(t, err)
	_, err = parseHex("zz")
	assert.Error(t, err)
}

func TestKindsRegistered(t *testing.T) {
	all := sortedKinds()
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].name, all[i].name)
	}
	for _, name := range []string{"slideid", "masterid", "texttype", "ascii", "char2", "record", "xml"} {
		_, err := lookupKind(name)
		assert.NoError(t, err, name)
	}
	_, err := lookupKind("nope")
	assert.Error(t, err)

	var buf bytes.Buffer
	listKinds(&buf)
	assert.Contains(t, buf.String(), "utf16")
	assert.Contains(t, buf.String(), "(uses -n)")
}

func TestRunDecoder(t *testing.T) {
	tests := []struct {
		kind     string
		hex      string
		n        int
		consumed int
		value    string
		wantErr  bool
	}{
		{"slideid", "00 01 00 00", -1, 4, "SlideID(256)", false},
		{"slideid", "ff 00 00 00", -1, 4, "", true},
		{"masterid", "00 00 00 80", -1, 4, "MasterID(0x80000000)", false},
		{"texttype", "05 00 00 00", -1, 4, "CenterBody", false},
		{"ascii", "41 42 00 43", -1, 4, `"AB"`, false},
		{"ascii", "41 42 43", 2, 2, `"AB"`, false},
		{"utf16", "41 00 42", -1, 3, "", true},
		{"slideidref", "00 00 00 00", -1, 4, "null", false},
		{"picturebulletindex", "05 00", -1, 2, "0x5", false},
		{"u8", "", -1, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.hex, func(t *testing.T) {
			k, err := lookupKind(tt.kind)
			require.NoError(t, err)
			data, err := parseHex(tt.hex)
			require.NoError(t, err)

			res := runDecoder(k, data, tt.n)
			assert.Equal(t, tt.consumed, res.consumed)
			assert.Equal(t, len(data), res.total)
			if tt.wantErr {
				require.Error(t, res.err)
				assert.True(t, errors.Is(res.err, ferrors.ErrCorruptedData))
				return
			}
			require.NoError(t, res.err)
			assert.Equal(t, tt.value, formatValue(res.value))
		})
	}
}

func TestPrinter(t *testing.T) {
	k, err := lookupKind("indentlevel")
	require.NoError(t, err)

	var buf bytes.Buffer
	p := printer{w: &buf, dump: true}
	p.result(k.name, runDecoder(k, []byte{3, 0}, -1))
	out := buf.String()
	assert.Contains(t, out, "consumed: 2 of 2 bytes")
	assert.Contains(t, out, "value:")
	assert.Contains(t, out, "field.IndentLevel", "spew dump")

	buf.Reset()
	p.result(k.name, runDecoder(k, []byte{9, 0}, -1))
	assert.Contains(t, buf.String(), "error:")
	assert.NotContains(t, buf.String(), "value:")
}

func TestUseColor(t *testing.T) {
	assert.True(t, useColor(config.ColorAlways))
	assert.False(t, useColor(config.ColorNever))
}

// part writes one record, with any children, for scan tests.
type part func(w *stream.Writer)

func build(parts ...part) []byte {
	w := stream.NewWriter()
	for _, p := range parts {
		p(w)
	}
	return w.Bytes()
}

func container(inst, typ uint16, children ...part) part {
	return func(w *stream.Writer) {
		w.Record(atom.ContainerVersion, inst, typ, func(w *stream.Writer) {
			for _, c := range children {
				c(w)
			}
		})
	}
}

func atomRec(inst, typ uint16, body []byte) part {
	return func(w *stream.Writer) {
		w.Record(0, inst, typ, func(w *stream.Writer) { w.WriteBytes(body) })
	}
}

func u32s(vs ...uint32) []byte {
	var b []byte
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint32(b, v)
	}
	return b
}

func persist(id uint32) part {
	return atomRec(0, atom.RTSlidePersistAtom, u32s(1, 0, 0, id, 0))
}

func slideAtom(master, notes uint32) part {
	body := u32s(uint32(field.LayoutBlank))
	body = append(body, make([]byte, 8)...)
	body = append(body, u32s(master, notes)...)
	body = append(body, 0, 0, 0, 0)
	return atomRec(0, atom.RTSlideAtom, body)
}

func TestScanBytesClean(t *testing.T) {
	data := build(
		container(0, atom.RTDocument,
			container(atom.ListMasters, atom.RTSlideListWithText, persist(0x80000000)),
			container(atom.ListSlides, atom.RTSlideListWithText, persist(0x100), persist(0x101)),
			container(0, atom.RTExObjList, atomRec(1, atom.RTExOleObjAtom, u32s(1, 0, 7, 0, 0, 0))),
			atomRec(0, 0x1234, []byte{1, 2, 3}),
		),
		slideAtom(0x80000000, 0),
	)

	rep := scanBytes(config.Default().Scan, zap.NewNop(), "deck.ppt", data)
	assert.NoError(t, rep.problems)
	assert.Equal(t, 10, rep.records)
	assert.Equal(t, 5, rep.decoded)
	assert.Equal(t, 1, rep.skipped)
}

func TestScanBytesProblems(t *testing.T) {
	data := build(container(0, atom.RTDocument,
		container(atom.ListSlides, atom.RTSlideListWithText, persist(0x100), persist(0x100)),
		atomRec(0, atom.RTExHyperlinkAtom, u32s(7)),
		atomRec(1, atom.RTExOleObjAtom, u32s(1, 0, 7, 0, 0, 0)),
		atomRec(0, atom.RTTextHeaderAtom, u32s(3)),
		atomRec(0, atom.RTExObjRefAtom, u32s(42)),
		atomRec(0, atom.RTNotesAtom, u32s(0x100, 0)),
	))

	rep := scanBytes(config.Default().Scan, zap.NewNop(), "deck.ppt", data)
	problems := multierr.Errors(rep.problems)
	require.Len(t, problems, 4)

	var kinds []ferrors.Kind
	for _, p := range problems {
		var fe *ferrors.Error
		require.True(t, errors.As(p, &fe), p.Error())
		kinds = append(kinds, fe.Kind)
	}
	assert.Equal(t, []ferrors.Kind{
		ferrors.KindCorruptedData,     // text type 3
		ferrors.KindDuplicateID,       // slide 0x100
		ferrors.KindDuplicateID,       // exobj 7 vs hyperlink 7
		ferrors.KindDanglingReference, // exobj 42
	}, kinds)
	assert.Equal(t, 1, rep.skipped)
}

func TestScanBytesDepthAndUnknown(t *testing.T) {
	data := build(container(0, atom.RTDocument,
		container(0, atom.RTSlide, slideAtom(0, 0)),
		atomRec(0, 0x7777, nil),
	))

	cfg := config.ScanConfig{MaxDepth: 1, SkipUnknown: false}
	rep := scanBytes(cfg, zap.NewNop(), "deck.ppt", data)
	assert.Equal(t, 0, rep.decoded, "slide container is below max depth")
	assert.Equal(t, 2, rep.skipped)

	problems := multierr.Errors(rep.problems)
	require.Len(t, problems, 1)
	assert.True(t, errors.Is(problems[0], atom.ErrUnknownRecord))
}

func TestScanBytesTruncated(t *testing.T) {
	data := build(container(0, atom.RTDocument, persist(0x100)))
	data = data[:len(data)-6]

	rep := scanBytes(config.Default().Scan, zap.NewNop(), "deck.ppt", data)
	require.Error(t, rep.problems)
}

func TestScanBytesOversizedLength(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"atom", stream.NewWriter().
			WriteU16LE(0).WriteU16LE(atom.RTCString).WriteU32LE(0xFFFFFFFC).
			WriteBytes([]byte{'a', 0}).Bytes()},
		{"container", stream.NewWriter().
			WriteU16LE(uint16(atom.ContainerVersion)).WriteU16LE(atom.RTDocument).WriteU32LE(0xFFFFFFF0).
			WriteBytes(build(persist(0x100))).Bytes()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var before, after runtime.MemStats
			runtime.ReadMemStats(&before)
			rep := scanBytes(config.Default().Scan, zap.NewNop(), "deck.ppt", tt.data)
			runtime.ReadMemStats(&after)

			assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(16<<20))
			assert.Equal(t, 1, rep.records)
			assert.Zero(t, rep.decoded)
			problems := multierr.Errors(rep.problems)
			require.NotEmpty(t, problems)
			assert.True(t, errors.Is(problems[0], ferrors.ErrCorruptedData) ||
				errors.Is(problems[0], stream.ErrLimitExceeded), problems[0].Error())
		})
	}
}

func TestScanFilesAndRunScan(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ppt")
	bad := filepath.Join(dir, "bad.ppt")
	require.NoError(t, os.WriteFile(good, build(atomRec(0, atom.RTTextHeaderAtom, u32s(1))), 0o600))
	require.NoError(t, os.WriteFile(bad, build(atomRec(0, atom.RTTextHeaderAtom, u32s(9))), 0o600))

	cfg := config.Default()
	cfg.Workers = 2

	var buf bytes.Buffer
	ok, err := runScan(context.Background(), cfg, zap.NewNop(), printer{w: &buf}, []string{good, bad})
	require.NoError(t, err)
	assert.False(t, ok)

	lines := strings.Split(buf.String(), "\n")
	assert.Contains(t, lines[0], "good.ppt: 1 records, 1 decoded, 0 skipped, 0 problems")
	assert.Contains(t, lines[1], "bad.ppt: 1 records, 0 decoded, 1 skipped, 1 problems")

	_, err = scanFiles(context.Background(), cfg, zap.NewNop(), []string{filepath.Join(dir, "missing.ppt")})
	assert.Error(t, err)
}

func TestInteractiveFlow(t *testing.T) {
	m := newInteractiveModel()
	for i, k := range m.kinds {
		if k.name == "ascii" {
			m.selected = i
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(*interactiveModel)
	require.Equal(t, stateInputBytes, m.state)
	require.Len(t, m.inputs, 2, "sized kinds ask for n")

	m.inputs[0].SetValue("48 49 00")
	msg := m.decode()
	next, _ = m.Update(msg)
	m = next.(*interactiveModel)
	require.Equal(t, stateShowResult, m.state)
	require.NoError(t, m.err)
	assert.Equal(t, "HI", m.result.value)
	assert.Contains(t, m.View(), "Result of")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(*interactiveModel)
	assert.Equal(t, stateInputBytes, m.state)

	m.inputs[1].SetValue("x")
	decoded := m.decode().(decodedMsg)
	assert.Error(t, decoded.err)
}
