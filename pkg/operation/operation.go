// Package operation copies entity trees between containers of the platform
// and replicates their wikis.
package operation

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/remote"
	"github.com/walteh/syncopy/pkg/wiki"
)

// Outcome is what happened to one source entity.
type Outcome int

const (
	// OutcomeCopied means a destination entity exists and was mapped
	OutcomeCopied Outcome = iota
	// OutcomeSkipped means the entity could not be copied but the walk continued
	OutcomeSkipped
	// OutcomeExcluded means the options excluded the entity
	OutcomeExcluded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCopied:
		return "copied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeExcluded:
		return "excluded"
	}
	return "unknown"
}

// 📋 Result describes one visited source entity
type Result struct {
	Outcome  Outcome
	SourceID string
	// NewID is set for copied entities
	NewID string
	Kind  entity.Kind
	Name  string
	// Reason explains skipped and excluded entities
	Reason string
}

// 📣 Reporter receives a result for every visited entity, in walk order
type Reporter interface {
	Report(ctx context.Context, result Result)
}

// WikiReporter is optionally implemented by a Reporter to receive every
// replicated wiki. result.PageIDs maps source page ids to destination page ids.
type WikiReporter interface {
	ReportWiki(ctx context.Context, sourceID, destinationID string, result *wiki.Result)
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, Result) {}

// 🔧 Config wires an Operator
type Config struct {
	// Client is the platform the copy runs against
	Client remote.Client
	// Reporter is optional
	Reporter Reporter
}

// 🎯 Operator runs copies against one platform client
type Operator struct {
	client   remote.Client
	reporter Reporter
	wikis    *wiki.Replicator
}

// 🏭 New creates a new operator with the given config
func New(cfg Config) (*Operator, error) {
	if cfg.Client == nil {
		return nil, errors.Errorf("client is required")
	}
	reporter := cfg.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Operator{
		client:   cfg.Client,
		reporter: reporter,
		wikis:    wiki.NewReplicator(cfg.Client),
	}, nil
}

// Copy copies sourceID into destinationID and returns the mapping of source
// ids to destination ids. When opts.Mapping is set it is extended in place and
// returned. The entity tree is copied completely before any wiki is touched, so
// wiki rewriting sees every new id. Nothing is rolled back on failure: the
// mapping of everything created so far is returned with the error.
func (o *Operator) Copy(ctx context.Context, sourceID, destinationID string, opts Options) (*mapping.Mapping, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	m := opts.Mapping
	if m == nil {
		m = &mapping.Mapping{}
	}

	ctx = zerolog.Ctx(ctx).With().Str("copy_source", sourceID).Str("copy_destination", destinationID).Logger().WithContext(ctx)

	w := &walker{
		client:   o.client,
		reporter: o.reporter,
		opts:     opts,
		mapping:  m,
	}

	if err := w.run(ctx, sourceID, destinationID); err != nil {
		return m, err
	}

	if !opts.CopyWiki {
		return m, nil
	}

	for _, oldID := range w.copied {
		newID, _ := m.Get(oldID)

		wopts := opts
		wopts.Mapping = m
		if oldID != sourceID {
			wopts.EntitySubPageID = ""
			wopts.DestinationSubPageID = ""
		}

		res, err := o.copyWiki(ctx, oldID, newID, wopts)
		if err != nil {
			return m, err
		}
		if wr, ok := o.reporter.(WikiReporter); ok {
			wr.ReportWiki(ctx, oldID, newID, res)
		}
	}

	return m, nil
}

// CopyWiki replicates the wiki of sourceID onto destinationID. References are
// rewritten with opts.Mapping when UpdateSynIDs is set.
func (o *Operator) CopyWiki(ctx context.Context, sourceID, destinationID string, opts Options) (*wiki.Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return o.copyWiki(ctx, sourceID, destinationID, opts)
}

func (o *Operator) copyWiki(ctx context.Context, sourceID, destinationID string, opts Options) (*wiki.Result, error) {
	res, err := o.wikis.Copy(ctx, sourceID, destinationID, wiki.Options{
		EntitySubPageID:      opts.EntitySubPageID,
		DestinationSubPageID: opts.DestinationSubPageID,
		UpdateLinks:          opts.UpdateLinks,
		UpdateSynIDs:         opts.UpdateSynIDs,
		EntityMap:            opts.Mapping,
	})
	if err != nil {
		return nil, errors.Errorf("copying wiki of %s to %s: %w", sourceID, destinationID, err)
	}
	return res, nil
}
