package util

import (
	"time"

	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
)

// DefaultProgressInterval is the number of rows between progress lines.
const DefaultProgressInterval = 1000

// RowProgress counts processed and skipped rows of one input and logs a line
// every Interval rows.
type RowProgress struct {
	Scope    logger.Scope
	Interval int

	processed int
	skipped   int
	started   time.Time
}

// NewRowProgress returns a progress counter logging through scope.
func NewRowProgress(scope logger.Scope, interval int) *RowProgress {
	if interval <= 0 {
		interval = DefaultProgressInterval
	}
	return &RowProgress{
		Scope:    scope,
		Interval: interval,
		started:  time.Now(),
	}
}

// Done records a successfully processed row.
func (p *RowProgress) Done() {
	p.processed++
	p.tick()
}

// Skip records a row that failed and was skipped.
func (p *RowProgress) Skip() {
	p.skipped++
	p.tick()
}

func (p *RowProgress) tick() {
	if total := p.Total(); total%p.Interval == 0 {
		p.Scope.Info("Processed", "rows", total)
	}
}

func (p *RowProgress) Processed() int { return p.processed }
func (p *RowProgress) Skipped() int   { return p.skipped }
func (p *RowProgress) Total() int     { return p.processed + p.skipped }

// Finish logs the final counts.
func (p *RowProgress) Finish() {
	p.Scope.Info("Finished",
		"rows", p.Total(),
		"processed", p.processed,
		"skipped", p.skipped,
		"duration", time.Since(p.started).Round(time.Millisecond),
	)
}
