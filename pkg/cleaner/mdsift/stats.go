package mdsift

import (
	"fmt"
	"strings"
	"time"
)

// Stats captures metrics about a single conversion.
type Stats struct {
	// Size metrics
	InputBytes  int `json:"input_bytes"`
	OutputBytes int `json:"output_bytes"`

	// Strategy records how the content root was chosen: "selector:<sel>"
	// when a semantic selector matched, "density" when scoring picked the
	// root, empty when the document had no body.
	Strategy     string `json:"strategy,omitempty"`
	ContentScore int    `json:"content_score,omitempty"`

	// Node counts before and after pruning
	NodesBuilt  int `json:"nodes_built"`
	NodesKept   int `json:"nodes_kept"`
	NodesPruned int `json:"nodes_pruned"`

	// Timing
	ParseDuration  time.Duration `json:"parse_duration_ms"`
	LocateDuration time.Duration `json:"locate_duration_ms"`
	BuildDuration  time.Duration `json:"build_duration_ms"`
	PruneDuration  time.Duration `json:"prune_duration_ms"`
	RenderDuration time.Duration `json:"render_duration_ms"`
	TotalDuration  time.Duration `json:"total_duration_ms"`
}

// ReductionPercent returns the percentage reduction in size.
func (s *Stats) ReductionPercent() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.InputBytes-s.OutputBytes) / float64(s.InputBytes) * 100
}

// String returns a human-readable summary of the stats.
func (s *Stats) String() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Size: %d -> %d bytes (%.1f%% reduction)\n",
		s.InputBytes, s.OutputBytes, s.ReductionPercent()))

	if s.Strategy != "" {
		sb.WriteString(fmt.Sprintf("Content root: %s", s.Strategy))
		if s.ContentScore > 0 {
			sb.WriteString(fmt.Sprintf(" (score %d)", s.ContentScore))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Nodes: %d built, %d kept, %d pruned\n",
		s.NodesBuilt, s.NodesKept, s.NodesPruned))

	sb.WriteString(fmt.Sprintf("Timing: parse=%v, locate=%v, build=%v, prune=%v, render=%v, total=%v\n",
		s.ParseDuration.Round(time.Microsecond),
		s.LocateDuration.Round(time.Microsecond),
		s.BuildDuration.Round(time.Microsecond),
		s.PruneDuration.Round(time.Microsecond),
		s.RenderDuration.Round(time.Microsecond),
		s.TotalDuration.Round(time.Microsecond)))

	return sb.String()
}

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Phase   string `json:"phase"`   // "locate", "build", "render"
	Message string `json:"message"` // Human-readable description
	Context string `json:"context"` // Element or selector involved
}

// String returns a formatted warning message.
func (w Warning) String() string {
	if w.Context != "" {
		return fmt.Sprintf("[%s] %s (context: %s)", w.Phase, w.Message, w.Context)
	}
	return fmt.Sprintf("[%s] %s", w.Phase, w.Message)
}

// Result contains the output of a conversion.
type Result struct {
	// Markdown is the normalized output. Empty when Error is set.
	Markdown string `json:"markdown"`

	// Nodes is the pruned intermediate node list the Markdown was rendered
	// from. It round-trips through EncodeNodes/DecodeNodes.
	Nodes []*Node `json:"nodes,omitempty"`

	// Stats contains metrics about what was done.
	Stats *Stats `json:"stats"`

	// Warnings contains non-fatal issues encountered.
	Warnings []Warning `json:"warnings,omitempty"`

	// Error is set when the conversion produced no usable output.
	Error error `json:"-"`
}

// AddWarning records a non-fatal issue.
func (r *Result) AddWarning(phase, message, context string) {
	r.Warnings = append(r.Warnings, Warning{
		Phase:   phase,
		Message: message,
		Context: context,
	})
}

// HasWarnings returns true if any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
