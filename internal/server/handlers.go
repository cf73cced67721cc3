package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/KaramelBytes/pitwall-cli/internal/f1"
	"github.com/KaramelBytes/pitwall-cli/internal/logger"
	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
)

type healthResponse struct {
	Status  string `json:"status"`
	Dataset string `json:"dataset"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Dataset: "ready"}
	if _, err := s.Dataset(); err != nil {
		resp.Dataset = "unavailable"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleViewer(w http.ResponseWriter, r *http.Request) {
	t, err := s.viewerTable(sessionID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, t.View(s.opt.ViewerMaxRows))
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opt.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.opt.MaxUploadBytes); err != nil {
		writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf("%w: multipart field \"file\" is required", errBadRequest))
		return
	}
	defer file.Close()

	if !sheet.Supported(hdr.Filename) {
		writeError(w, fmt.Errorf("%w: %s", sheet.ErrUnsupportedFormat, hdr.Filename))
		return
	}
	t, err := sheet.Read(file, hdr.Filename, sheet.Options{Sheet: r.FormValue("sheet")})
	if err != nil {
		if !errors.Is(err, sheet.ErrSheetNotFound) {
			err = fmt.Errorf("%w: %v", errBadRequest, err)
		}
		writeError(w, err)
		return
	}
	id := ensureSession(w, r)
	s.sessions.put(id, t)
	s.metrics.ViewerUploads.Inc()
	s.log.Info(r.Context(), "viewer upload",
		logger.String("file", hdr.Filename),
		logger.Int("rows", t.NumRows()),
		logger.Int("cols", t.NumCols()))
	writeJSON(w, http.StatusOK, t.View(s.opt.ViewerMaxRows))
}

func (s *Server) handleDrivers(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds.Drivers())
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	mode := f1.ModeNationality
	if q := r.URL.Query().Get("mode"); q != "" {
		if mode, err = f1.ParseTrendMode(q); err != nil {
			writeError(w, err)
			return
		}
	}
	v, err := f1.CareerTrends(ds, mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// resolveParam resolves a URL path selection such as "lewis%20hamilton".
func resolveParam(ds *f1.Dataset, r *http.Request) (int, error) {
	q, err := url.PathUnescape(chi.URLParam(r, "query"))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return ds.Resolve(q)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := resolveParam(ds, r)
	if err != nil {
		writeError(w, err)
		return
	}
	p, err := f1.BuildProfile(ds, id, s.portraits)
	if err != nil {
		writeError(w, err)
		return
	}
	if p.Portrait != "" {
		p.Portrait = fmt.Sprintf("/api/f1/drivers/%d/portrait", id)
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePortrait(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := resolveParam(ds, r)
	if err != nil {
		writeError(w, err)
		return
	}
	d, _ := ds.Driver(id)
	path := s.portraits.Find(d.Surname)
	if path == "" {
		writeError(w, fmt.Errorf("%w: no portrait for %s", errNotFound, d.Name()))
		return
	}
	http.ServeFile(w, r, path)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	qa, qb := strings.TrimSpace(q.Get("a")), strings.TrimSpace(q.Get("b"))
	if qa == "" || qb == "" {
		writeError(w, fmt.Errorf("%w: query parameters a and b are required", errBadRequest))
		return
	}
	bins := s.opt.HistogramBins
	if raw := q.Get("bins"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, fmt.Errorf("%w: bins must be a positive integer", errBadRequest))
			return
		}
		bins = n
	}
	a, err := ds.Resolve(qa)
	if err != nil {
		writeError(w, err)
		return
	}
	b, err := ds.Resolve(qb)
	if err != nil {
		writeError(w, err)
		return
	}
	c, err := f1.Compare(ds, a, b, bins)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	ds, err := s.Dataset()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds.Stats())
}
