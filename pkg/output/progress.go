package output

import (
	"github.com/cheggaaa/pb/v3"
)

// Progress wraps a terminal progress bar for the long-running phases
// (archive hashing, source hashing, transfer execution). A disabled
// progress sink accepts all calls and renders nothing.
type Progress struct {
	enabled bool
	bar     *pb.ProgressBar
}

// NewProgress creates a progress sink; pass enabled=false for quiet or
// non-interactive runs
func NewProgress(enabled bool) *Progress {
	return &Progress{enabled: enabled}
}

// Start begins a new bar for a phase of total steps, finishing any
// previous bar first
func (p *Progress) Start(total int) {
	if !p.enabled || total == 0 {
		return
	}
	p.Finish()
	p.bar = pb.Full.Start(total)
}

// Set updates the bar position, lazily starting a bar when a phase
// reports progress without an explicit Start
func (p *Progress) Set(done, total int) {
	if !p.enabled || total == 0 {
		return
	}
	if p.bar == nil {
		p.bar = pb.Full.Start(total)
	}
	p.bar.SetTotal(int64(total))
	p.bar.SetCurrent(int64(done))
}

// Finish completes and clears the current bar
func (p *Progress) Finish() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}
