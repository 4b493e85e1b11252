package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"parcelnorm/internal"
	"parcelnorm/internal/assemble"
	"parcelnorm/internal/county"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/relate"
	"parcelnorm/internal/source"
	"parcelnorm/internal/storage"
	"parcelnorm/internal/util"
)

// Default input file names inside Request.InputDir.
const (
	InputHTML     = "input.html"
	GeometryCSV   = "geometry.csv"
	ParcelsShapes = "parcels.shp"
)

type state int

const (
	stateNew state = iota
	stateLoaded
	stateAssembled
	stateLinked
	stateWritten
)

func (s state) String() string {
	switch s {
	case stateNew:
		return "new"
	case stateLoaded:
		return "loaded"
	case stateAssembled:
		return "assembled"
	case stateLinked:
		return "linked"
	case stateWritten:
		return "written"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// run tracks one document through the pipeline; each state is entered once
// and in order.
type run struct {
	state state
}

func (r *run) enter(next state) error {
	if next != r.state+1 {
		return fmt.Errorf("pipeline: cannot enter %s from %s", next, r.state)
	}
	r.state = next
	return nil
}

type Request struct {
	InputDir     string
	OutputDir    string
	County       string
	ProfilePath  string
	BaseURL      string
	WorkbookPath string
}

type EntityRef struct {
	Kind string
	Name string
}

type Result struct {
	TraceID       string
	County        string
	ParcelID      string
	Counts        map[string]int
	Files         []string
	Entities      []EntityRef
	Relationships []relate.Edge
	Review        []internal.ReviewRow
	Workbook      string
}

// Service runs the pipeline. The ledger is optional.
type Service struct {
	log zerolog.Logger
	db  *storage.DB
}

func NewService(log zerolog.Logger, db *storage.DB) *Service {
	return &Service{log: log, db: db}
}

// Process normalizes one input directory into OutputDir. The only error
// that is not a setup problem is a *internal.ValidationError from the
// parcel identity check, in which case nothing is written.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	timings := map[string]float64{}
	res := Result{TraceID: uuid.NewString(), County: req.County, Counts: map[string]int{}}
	log := s.log.With().Str("trace", res.TraceID).Str("county", req.County).Logger()
	r := &run{}

	in, err := s.load(req, log)
	if err != nil {
		return res, err
	}
	if err := r.enter(stateLoaded); err != nil {
		return res, err
	}
	res.ParcelID = in.ParcelID()
	timings["loadMs"] = msSince(start)

	if err := ctx.Err(); err != nil {
		return res, err
	}
	records, err := assemble.All(in)
	if err != nil {
		var verr *internal.ValidationError
		if errors.As(err, &verr) {
			log.Warn().Str("path", verr.Path).Msg(verr.Message)
			res.Review = review(in.Misses)
			timings["totalMs"] = msSince(start)
			s.record(res, storage.StatusAborted, verr.Error(), timings, log)
		}
		return res, err
	}
	if err := r.enter(stateAssembled); err != nil {
		return res, err
	}

	p := link(records, in)
	if err := r.enter(stateLinked); err != nil {
		return res, err
	}
	timings["assembleMs"] = msSince(start) - timings["loadMs"]

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if err := r.enter(stateWritten); err != nil {
		return res, err
	}
	files, err := writeOutput(req.OutputDir, req.InputDir, p)
	res.Files = files
	if err != nil {
		return res, err
	}

	res.Counts = p.counts
	for _, e := range p.entities {
		res.Entities = append(res.Entities, EntityRef{Kind: e.Kind, Name: e.Name})
	}
	res.Relationships = p.edges
	res.Review = review(in.Misses)
	timings["totalMs"] = msSince(start)

	log.Info().
		Str("parcel", res.ParcelID).
		Int("files", len(res.Files)).
		Int("unmapped", len(res.Review)).
		Msg("run written")
	s.record(res, storage.StatusWritten, "", timings, log)

	if req.WorkbookPath != "" {
		if err := ExportWorkbook(res, req.WorkbookPath); err != nil {
			return res, fmt.Errorf("export workbook: %w", err)
		}
		res.Workbook = req.WorkbookPath
	}
	return res, nil
}

func (s *Service) load(req Request, log zerolog.Logger) (*assemble.Input, error) {
	if req.InputDir == "" {
		return nil, errors.New("input dir is required")
	}
	profile, err := county.LoadWithOverride(req.County, req.ProfilePath)
	if err != nil {
		return nil, err
	}

	sidecars := source.Reader{Dir: req.InputDir, Log: log}
	seed := sidecars.Seed()
	base := req.BaseURL
	if base == "" && seed != nil && seed.SourceHTTPRequest != nil {
		base = seed.SourceHTTPRequest.URL
	}
	base = util.FirstNonEmpty(base, profile.BaseURL)

	doc, err := source.LoadHTML(filepath.Join(req.InputDir, InputHTML), base)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", InputHTML, err)
	}

	in := assemble.NewInput(doc, profile, log)
	in.Seed = seed
	in.Address = sidecars.Address()
	if id := in.ParcelID(); id != "" {
		in.Overrides = sidecars.Overrides(id)
	}

	in.Geometry, err = source.LoadGeometryCSV(filepath.Join(req.InputDir, GeometryCSV))
	if err != nil {
		log.Warn().Err(err).Msg("geometry csv unreadable")
	}
	in.Parcels, err = source.LoadShapefile(filepath.Join(req.InputDir, ParcelsShapes))
	if err != nil {
		log.Warn().Err(err).Msg("parcel shapefile unreadable")
	}
	return in, nil
}

// record appends the run to the ledger. Ledger failures are logged and do
// not fail the run.
func (s *Service) record(res Result, status, reason string, timings map[string]float64, log zerolog.Logger) {
	if s.db == nil {
		return
	}
	row := internal.RunRow{
		TraceID:  res.TraceID,
		County:   res.County,
		ParcelID: res.ParcelID,
		Status:   status,
		Counts:   res.Counts,
		Timings:  timings,
	}
	if reason != "" {
		row.AbortReason = &reason
	}
	if err := s.db.InsertRun(row, res.Review); err != nil {
		log.Error().Err(err).Msg("ledger insert failed")
	}
}

// review annotates each miss with the closest rule label of its domain.
func review(misses *mapping.Misses) []internal.ReviewRow {
	var out []internal.ReviewRow
	for _, m := range misses.Items() {
		row := internal.ReviewRow{Domain: m.Domain, Raw: m.Raw, Seen: 1}
		if label, score := mapping.SuggestFor(m.Domain, m.Raw); label != "" {
			row.Suggestion = &label
			row.Score = &score
		}
		out = append(out, row)
	}
	return out
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000
}
