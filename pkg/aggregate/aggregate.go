// Package aggregate merges the curated catalog with the documents found in a
// remote listing.
package aggregate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/stonewall-sec/auditscope/pkg/catalog"
	"github.com/stonewall-sec/auditscope/pkg/listing"
)

const DefaultExtension = ".pdf"

// Logger abstracts logging so callers can use logrus, stdlib log, or any
// other logger that satisfies this interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// nopLogger silently discards all messages.
type nopLogger struct{}

func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Debugf(string, ...interface{}) {}

// Config holds everything an Aggregator needs.
type Config struct {
	Lister    listing.Lister
	Location  listing.Location
	Extension string   // defaults to DefaultExtension
	Log       Logger   // optional; nil = no logging
	Metrics   *Metrics // optional
}

type Aggregator struct {
	lister  listing.Lister
	loc     listing.Location
	ext     string
	log     Logger
	metrics *Metrics
}

func New(cfg Config) *Aggregator {
	a := &Aggregator{
		lister:  cfg.Lister,
		loc:     cfg.Location,
		ext:     cfg.Extension,
		log:     cfg.Log,
		metrics: cfg.Metrics,
	}
	if a.ext == "" {
		a.ext = DefaultExtension
	}
	if a.log == nil {
		a.log = nopLogger{}
	}
	return a
}

// Aggregate returns the curated records followed by the documents discovered
// remotely. Remote failures only shrink the result; they are never returned.
func (a *Aggregator) Aggregate(ctx context.Context, curated []catalog.AuditRecord) []catalog.AuditRecord {
	remote := a.Discover(ctx)
	merged := Merge(curated, remote)
	a.metrics.observeRecords(len(curated), len(merged)-len(curated))
	a.log.Debugf("Catalog ready: %d curated, %d merged", len(curated), len(merged))
	return merged
}

// Discover makes the single listing request and maps matching entries to
// records. It returns an empty slice on any failure.
func (a *Aggregator) Discover(ctx context.Context) []catalog.AuditRecord {
	if a.lister == nil {
		return []catalog.AuditRecord{}
	}

	start := time.Now()
	entries, err := a.lister.List(ctx, a.loc)
	a.metrics.observeListing(outcome(err), time.Since(start))
	if err != nil {
		a.log.Warnf("Could not list remote audits at %s: %v", a.loc, err)
		return []catalog.AuditRecord{}
	}

	recs := FromEntries(entries, a.ext)
	a.log.Debugf("Remote listing %s returned %d entries, %d documents", a.loc, len(entries), len(recs))
	return recs
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, listing.ErrStatus):
		return OutcomeStatus
	case errors.Is(err, listing.ErrShape):
		return OutcomeShape
	default:
		return OutcomeTransport
	}
}

// FromEntries keeps the files whose name ends with ext (case-sensitive) and
// derives a display record for each. Entries without a download URL cannot be
// displayed and are skipped.
func FromEntries(entries []listing.Entry, ext string) []catalog.AuditRecord {
	recs := make([]catalog.AuditRecord, 0, len(entries))
	for _, e := range entries {
		if !e.IsFile() || !strings.HasSuffix(e.Name, ext) || e.DownloadURL == "" {
			continue
		}
		recs = append(recs, catalog.AuditRecord{
			Name:        catalog.FormatName(e.Name, ext),
			DocumentURL: e.DownloadURL,
			SizeLabel:   catalog.FormatSize(e.Size),
			FileName:    e.Name,
			HTMLURL:     e.HTMLURL,
		})
	}
	return recs
}

// Merge concatenates curated and remote records, keeping each source's order.
// Records sharing a document URL keep only their first occurrence, so the
// curated version wins over a rediscovered file.
func Merge(curated, remote []catalog.AuditRecord) []catalog.AuditRecord {
	out := make([]catalog.AuditRecord, 0, len(curated)+len(remote))
	seen := make(map[string]bool, len(curated)+len(remote))
	for _, src := range [][]catalog.AuditRecord{curated, remote} {
		for _, r := range src {
			if r.DocumentURL == "" || seen[r.DocumentURL] {
				continue
			}
			seen[r.DocumentURL] = true
			out = append(out, r)
		}
	}
	return out
}
