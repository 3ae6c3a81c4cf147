package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/pptfields/atom"
	"github.com/wippyai/pptfields/config"
	"github.com/wippyai/pptfields/docindex"
	"github.com/wippyai/pptfields/stream"
)

// scanReport summarises one scanned file.
type scanReport struct {
	path     string
	records  int
	decoded  int
	skipped  int
	atoms    []atom.Atom
	problems error // decode failures, duplicates and dangling references
}

type scanner struct {
	cfg  config.ScanConfig
	log  *zap.Logger
	path string
	ix   *docindex.Index
	rep  *scanReport
}

// scanFiles scans every path with at most workers files in flight. Reports
// come back in argument order. Only I/O failures abort the group; problems
// inside a file are part of its report.
func scanFiles(ctx context.Context, cfg config.Config, log *zap.Logger, paths []string) ([]*scanReport, error) {
	reports := make([]*scanReport, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.EffectiveWorkers())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			reports[i] = scanBytes(cfg.Scan, log.With(zap.String("file", path)), path, data)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// scanBytes walks the record tree in data, decodes the atoms it knows and
// checks identifiers across the whole file.
func scanBytes(cfg config.ScanConfig, log *zap.Logger, path string, data []byte) *scanReport {
	s := &scanner{
		cfg:  cfg,
		log:  log,
		path: path,
		ix:   docindex.New(),
		rep:  &scanReport{path: path},
	}
	r := stream.NewBytesReader(data)
	if err := r.PushLimit(len(data)); err != nil {
		s.problem(err)
		return s.rep
	}
	for r.Remaining() > 0 {
		if err := s.record(r, 0, ""); err != nil {
			s.problem(err)
			break
		}
	}
	s.problem(s.ix.Validate())
	s.problem(s.ix.ResolveAll())
	log.Debug("scan finished",
		zap.Int("records", s.rep.records),
		zap.Int("decoded", s.rep.decoded),
		zap.Int("skipped", s.rep.skipped),
		zap.Int("problems", len(multierr.Errors(s.rep.problems))))
	return s.rep
}

func (s *scanner) problem(err error) {
	s.rep.problems = multierr.Append(s.rep.problems, err)
}

// record reads one record and everything under it. A returned error means
// the record structure itself is unreadable and the walk must stop; field
// level failures are noted and the record is skipped.
func (s *scanner) record(r *stream.Reader, depth int, list docindex.Namespace) error {
	start := r.Position()
	h, err := atom.ReadRecordHeader(r)
	if err != nil {
		return err
	}
	s.rep.records++
	end := start + atom.HeaderSize + int(h.Length)

	if h.IsContainer() {
		if depth >= s.cfg.MaxDepth {
			s.log.Warn("container too deep, skipping", zap.Stringer("record", h), zap.Int("offset", start))
			s.rep.skipped++
			return r.Skip(int(h.Length))
		}
		if h.Type == atom.RTSlideListWithText {
			list, _ = docindex.ListNamespace(h.Instance)
		}
		if err := r.PushLimit(int(h.Length)); err != nil {
			return err
		}
		for r.Remaining() > 0 {
			if err := s.record(r, depth+1, list); err != nil {
				return err
			}
		}
		_, err := r.PopLimit()
		return err
	}

	a, err := atom.Decode(h, r)
	switch {
	case err == nil:
		s.rep.decoded++
		s.rep.atoms = append(s.rep.atoms, a)
		loc := docindex.Location{File: s.path, Offset: start, List: list}
		s.problem(docindex.Collect(s.ix, a, loc))
		return nil
	case stderrors.Is(err, atom.ErrUnknownRecord):
		if !s.cfg.SkipUnknown {
			s.problem(fmt.Errorf("offset %d: %w", start, err))
		}
		s.rep.skipped++
		return r.Skip(int(h.Length))
	default:
		s.log.Debug("atom failed to decode", zap.Stringer("record", h), zap.Int("offset", start), zap.Error(err))
		s.problem(err)
		s.rep.skipped++
		return r.Skip(end - r.Position())
	}
}
