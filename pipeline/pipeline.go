// Package pipeline runs contact extraction over batches of documents.
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/contact-extract/extract"
	"github.com/vortex-fintech/contact-extract/foundation/textutil"
	"github.com/vortex-fintech/contact-extract/logger"
	"github.com/vortex-fintech/contact-extract/verify"
)

// Contacts holds everything found in a single document.
type Contacts struct {
	Emails    []string
	PhoneNums []string
}

// Metrics receives extraction statistics. Implementations must be safe for
// concurrent use.
type Metrics interface {
	IncDocuments()
	AddEmailsFound(n int)
	AddPhoneNumsFound(n int)
	ObserveExtractDuration(d time.Duration)
}

const DefaultWorkers = 4

// Options configures an Extractor. The zero value is usable.
type Options struct {
	// Workers bounds how many documents are processed in parallel.
	// Values below 1 fall back to DefaultWorkers.
	Workers int

	// FoldNFKC normalizes each document before extraction so fullwidth
	// digit and letter variants match the ASCII patterns.
	FoldNFKC bool

	// StrictEmails and StrictPhoneNums pass detector output through the
	// verify filters, trading recall for precision.
	StrictEmails    bool
	StrictPhoneNums bool

	Logger  logger.LoggerInterface
	Metrics Metrics
}

// Extractor applies both contact detectors to batches of documents.
type Extractor struct {
	opts Options
}

func New(opts Options) *Extractor {
	if opts.Workers < 1 {
		opts.Workers = DefaultWorkers
	}
	return &Extractor{opts: opts}
}

// Run extracts contacts from every document and returns one Contacts value
// per input, index-aligned with docs. Extraction itself cannot fail; the
// only error source is ctx cancellation.
func (e *Extractor) Run(ctx context.Context, docs []string) ([]Contacts, error) {
	results := make([]Contacts, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.Workers)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.extractOne(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Extractor) extractOne(doc string) Contacts {
	start := time.Now()

	if e.opts.FoldNFKC {
		doc = textutil.FoldNFKC(doc)
	}

	c := Contacts{
		Emails:    extract.FindEmails(doc),
		PhoneNums: extract.FindPhoneNums(doc),
	}
	if e.opts.StrictEmails {
		c.Emails = verify.FilterEmails(c.Emails)
	}
	if e.opts.StrictPhoneNums {
		c.PhoneNums = verify.FilterPhoneNums(c.PhoneNums)
	}

	if m := e.opts.Metrics; m != nil {
		m.IncDocuments()
		m.AddEmailsFound(len(c.Emails))
		m.AddPhoneNumsFound(len(c.PhoneNums))
		m.ObserveExtractDuration(time.Since(start))
	}
	if l := e.opts.Logger; l != nil {
		l.Debugw("document extracted",
			"emails", len(c.Emails),
			"phone_nums", len(c.PhoneNums),
		)
	}

	return c
}
