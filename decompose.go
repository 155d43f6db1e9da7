package povu

import (
	"context"
	"runtime"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/povu-project/povu/cycleeq"
	"github.com/povu-project/povu/errs"
	"github.com/povu-project/povu/graph"
	"github.com/povu-project/povu/overlay"
	"github.com/povu-project/povu/pvst"
	"github.com/povu-project/povu/rov"
	"github.com/povu-project/povu/spantree"
	"github.com/povu-project/povu/walkenum"
)

// RoVOutcome is one entry of §6's out-emission iterator:
// (RoV, [walks], [variants], flags).
type RoVOutcome struct {
	RoV      *rov.RoV
	Walks    []graph.Walk
	Alleles  []overlay.AlleleSlice
	Variants []overlay.Variant
	Untangle overlay.UntangleReport
}

// Tangled reports this RoV's flags.tangled, per §6.
func (o RoVOutcome) Tangled() bool { return o.Untangle.Tangled() }

// Result is the output of a complete Decompose run.
type Result struct {
	RunID   string
	PVST    *pvst.Tree
	Outcome []RoVOutcome
}

// Decompose runs the full pipeline of §2 (C1-C8) over a frozen vg:
// spanning tree, cycle equivalence, PVST construction, call-set-driven
// RoV generation, and — fanned out across an errgroup bounded by
// GOMAXPROCS, since RoVs are disjoint once the PVST is frozen — walk
// enumeration and overlay per §5's concurrency model.
func Decompose(ctx context.Context, vg *graph.VG, opts Options, sink Sink) (*Result, error) {
	if sink == nil {
		sink = NopSink{}
	}
	runID := uuid.NewString()
	sink.Info("decompose started", "run_id", runID)

	st, err := spantree.Build(vg)
	if err != nil {
		return nil, errors.Wrapf(err, "decompose %s: build spanning tree", runID)
	}
	eq := cycleeq.Run(st)

	tree, err := pvst.Build(vg, st, eq)
	if err != nil {
		return nil, errors.Wrapf(err, "decompose %s: build PVST", runID)
	}
	sink.Debug("PVST built", "run_id", runID, "vertices", tree.NumVertices(), "classes", eq.NumClasses)

	callSet, err := rov.BuildCallSet(vg, opts.Ploidy, opts.Phase)
	if err != nil {
		return nil, errors.Wrapf(err, "decompose %s: build call set", runID)
	}

	rovs, err := rov.Generate(vg, tree, callSet, opts.Region)
	if err != nil {
		return nil, errors.Wrapf(err, "decompose %s: generate RoVs", runID)
	}
	sink.Info("RoVs generated", "run_id", runID, "count", len(rovs))

	outcomes := make([]RoVOutcome, len(rovs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, r := range rovs {
		i, r := i, r
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			outcome, err := processRoV(vg, r, opts, sink, runID)
			if err != nil {
				return err
			}
			outcomes[i] = outcome
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "decompose %s: RoV processing", runID)
	}

	sink.Info("decompose finished", "run_id", runID)
	return &Result{RunID: runID, PVST: tree, Outcome: outcomes}, nil
}

// processRoV runs walk enumeration and overlay for one RoV. An
// EnumerationBound failure is logged as a warning and surfaced as a
// RoVOutcome with no walks, rather than aborting the whole run, since
// §5 scopes the enumerator's depth bound to a single RoV at a time.
func processRoV(vg *graph.VG, r *rov.RoV, opts Options, sink Sink, runID string) (RoVOutcome, error) {
	route := r.Vertex.Route
	bound := opts.EnumerationBound
	if bound <= 0 {
		bound = walkenum.MaxFlubbleSteps
	}

	walks, err := walkenum.EnumerateBounded(vg, route.Start.V, route.Start.End, route.End.V, route.End.End, bound)
	if err != nil {
		if errs.Is(err, errs.EnumerationBound) {
			sink.Warn("enumeration bound hit", "run_id", runID, "pvst_vertex", r.Vertex.ID, "err", err.Error())
			return RoVOutcome{RoV: r}, nil
		}
		return RoVOutcome{}, err
	}

	alleles, untangle := overlay.Pair(walks, vg.References(), route.Start.V, route.End.V)
	var variants []overlay.Variant
	if refIdx, ok := overlay.ReferenceWalkIndex(alleles); ok {
		variants = overlay.TypeVariants(walks, refIdx)
	}

	return RoVOutcome{
		RoV:      r,
		Walks:    walks,
		Alleles:  alleles,
		Variants: variants,
		Untangle: untangle,
	}, nil
}

