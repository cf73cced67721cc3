// Package server exposes the viewer and the F1 dashboard over HTTP.
package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/logger"
	"github.com/KaramelBytes/pitwall-cli/internal/metrics"
	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
)

// Options configures a Server.
type Options struct {
	Sources        f1.Sources
	ImagesDir      string
	ViewerFile     string
	ViewerMaxRows  int
	HistogramBins  int
	MaxSessions    int
	MaxUploadBytes int64
}

// LoadFunc loads the F1 dataset. f1.Load in production.
type LoadFunc func(ctx context.Context, src f1.Sources) (*f1.Dataset, error)

// Server holds the current dataset and per-session viewer uploads.
type Server struct {
	opt       Options
	log       logger.Logger
	metrics   *metrics.Metrics
	load      LoadFunc
	portraits *f1.PortraitFinder
	sessions  *sessionStore

	mu      sync.RWMutex
	ds      *f1.Dataset
	loadErr error
}

// New builds a server. Call Reload before serving to load the dataset; a
// server without data still answers every route.
func New(opt Options, log logger.Logger, m *metrics.Metrics) *Server {
	if log == nil {
		log = logger.Named("server")
	}
	if m == nil {
		m = metrics.New(nil)
	}
	if opt.MaxUploadBytes <= 0 {
		opt.MaxUploadBytes = 32 << 20
	}
	return &Server{
		opt:       opt,
		log:       log,
		metrics:   m,
		load:      f1.Load,
		portraits: f1.NewPortraitFinder(opt.ImagesDir),
		sessions:  newSessionStore(opt.MaxSessions),
		loadErr:   fmt.Errorf("%w: not loaded", f1.ErrDataUnavailable),
	}
}

// WithLoader replaces the dataset loader.
func (s *Server) WithLoader(fn LoadFunc) *Server {
	s.load = fn
	return s
}

// Reload reads the sources and swaps the dataset in. On failure the previous
// dataset, if any, stays in place and the error is returned.
func (s *Server) Reload(ctx context.Context) error {
	ds, err := s.load(ctx, s.opt.Sources)
	if err != nil {
		s.metrics.ObserveLoad(0, err)
		s.log.Warn(ctx, "dataset load failed", logger.Error(err))
		s.mu.Lock()
		if s.ds == nil {
			s.loadErr = err
		}
		s.mu.Unlock()
		return err
	}
	st := ds.Stats()
	s.metrics.ObserveLoad(st.Records, nil)
	s.log.Info(ctx, "dataset loaded",
		logger.Int("drivers", st.Drivers),
		logger.Int("races", st.Races),
		logger.Int("records", st.Records))
	s.mu.Lock()
	s.ds, s.loadErr = ds, nil
	s.mu.Unlock()
	return nil
}

// Dataset returns the current dataset or the reason none is loaded.
func (s *Server) Dataset() (*f1.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.ds == nil {
		return nil, s.loadErr
	}
	return s.ds, nil
}

// viewerTable returns the session upload, falling back to the default file.
func (s *Server) viewerTable(id string) (*sheet.Table, error) {
	if id != "" {
		if t, ok := s.sessions.get(id); ok {
			return t, nil
		}
	}
	if s.opt.ViewerFile == "" {
		return nil, fmt.Errorf("%w: no viewer file configured and nothing uploaded", sheet.ErrDataUnavailable)
	}
	return sheet.Load(s.opt.ViewerFile, sheet.Options{})
}
