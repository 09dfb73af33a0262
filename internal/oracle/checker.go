package oracle

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/CultureBotAI/assay-metadata/internal/log"
	"github.com/CultureBotAI/assay-metadata/internal/registry"
	"github.com/CultureBotAI/assay-metadata/internal/validate"
)

const (
	// requestInterval keeps the pool under five requests per second
	// across both authorities.
	requestInterval = 200 * time.Millisecond
	defaultWorkers  = 4
)

// CrossChecker runs the external cross-check pass over the registry's
// PubChem CIDs and KEGG KOs. The pool is bounded and rate limited;
// ordering between identifier checks is irrelevant, results are
// collected and sorted afterwards.
type CrossChecker struct {
	pubchem   *PubchemClient
	kegg      *KeggClient
	store     VerdictStore
	limiter   *rate.Limiter
	workers   int
	skipCache bool
}

// NewCrossChecker wires the pass. A nil store disables persistence
// and every identifier is re-queried.
func NewCrossChecker(pubchem *PubchemClient, kegg *KeggClient, store VerdictStore, skipCache bool) *CrossChecker {
	return &CrossChecker{
		pubchem:   pubchem,
		kegg:      kegg,
		store:     store,
		limiter:   rate.NewLimiter(rate.Every(requestInterval), 1),
		workers:   defaultWorkers,
		skipCache: skipCache,
	}
}

type target struct {
	namespace string
	id        string
}

// Run cross-checks every distinct remote-verifiable identifier in reg.
// The returned findings carry one entry per identifier; a network
// failure after retries surfaces as unverified, never invalid.
func (c *CrossChecker) Run(ctx context.Context, reg *registry.Registry) ([]validate.Finding, error) {
	targets := collectTargets(reg)
	log.Info(log.CatOracle, "cross-check starting", "targets", len(targets), "workers", c.workers)

	var mu sync.Mutex
	verdicts := make([]Verdict, 0, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for _, tgt := range targets {
		g.Go(func() error {
			verdict, err := c.resolve(gctx, tgt)
			if err != nil {
				return err
			}
			mu.Lock()
			verdicts = append(verdicts, verdict)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(verdicts, func(i, j int) bool {
		if verdicts[i].Namespace != verdicts[j].Namespace {
			return verdicts[i].Namespace < verdicts[j].Namespace
		}
		return verdicts[i].ID < verdicts[j].ID
	})

	findings := make([]validate.Finding, 0, len(verdicts))
	var unverified int
	for _, v := range verdicts {
		if v.Status == validate.StatusUnverified {
			unverified++
		}
		findings = append(findings, v.Finding())
	}
	log.Info(log.CatOracle, "cross-check complete", "checked", len(findings), "unverified", unverified)
	return findings, nil
}

// resolve answers one target: cached verdict when available, otherwise
// a rate-limited remote query whose result is persisted. Unverified
// verdicts are not persisted, so the next run retries them.
func (c *CrossChecker) resolve(ctx context.Context, tgt target) (Verdict, error) {
	if c.store != nil && !c.skipCache {
		if cached, found, err := c.store.Get(ctx, tgt.namespace, tgt.id); err != nil {
			return Verdict{}, err
		} else if found {
			return cached, nil
		}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Verdict{}, err
	}

	var verdict Verdict
	switch tgt.namespace {
	case NamespacePubchem:
		verdict = c.pubchem.Verify(ctx, tgt.id)
	case NamespaceKegg:
		verdict = c.kegg.Verify(ctx, tgt.id)
	}

	if c.store != nil && verdict.Status != validate.StatusUnverified {
		if err := c.store.Put(ctx, verdict); err != nil {
			return Verdict{}, err
		}
	}
	return verdict, nil
}

// collectTargets gathers the distinct remote-checkable identifiers in
// deterministic order: PubChem CIDs from the chemical tables, KEGG KOs
// from the annotation table.
func collectTargets(reg *registry.Registry) []target {
	seen := make(map[target]struct{})
	var targets []target
	add := func(namespace, id string) {
		if id == "" {
			return
		}
		tgt := target{namespace: namespace, id: id}
		if _, dup := seen[tgt]; dup {
			return
		}
		seen[tgt] = struct{}{}
		targets = append(targets, tgt)
	}

	for _, row := range reg.SubstrateRows() {
		add(NamespacePubchem, row.Substrate.Pubchem)
	}
	for _, row := range reg.OverrideRows() {
		add(NamespacePubchem, row.Override.Pubchem)
	}
	for _, row := range reg.AnnotationRows() {
		add(NamespaceKegg, row.Annotation.KeggKO)
	}
	return targets
}
