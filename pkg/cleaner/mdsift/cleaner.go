package mdsift

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Cleaner converts HTML documents to compact Markdown. It implements the
// cleaner.Cleaner interface.
//
// A Cleaner is immutable after New: the config and compiled patterns are
// read-only, so a single instance is safe for concurrent use and carries
// no state between calls.
type Cleaner struct {
	config     *Config
	nonContent []*regexp.Regexp
}

// New creates a Cleaner with the given configuration. If config is nil,
// DefaultConfig() is used. Configs from user input should pass Validate
// first; New panics on an uncompilable non-content pattern.
func New(config *Config) *Cleaner {
	if config == nil {
		config = DefaultConfig()
	}
	nonContent := make([]*regexp.Regexp, 0, len(config.NonContentPatterns))
	for _, p := range config.NonContentPatterns {
		nonContent = append(nonContent, regexp.MustCompile("(?i)"+p))
	}
	return &Cleaner{
		config:     config,
		nonContent: nonContent,
	}
}

// Name returns the cleaner name for logging.
func (c *Cleaner) Name() string {
	return "mdsift"
}

// Clean transforms HTML into Markdown. This method implements the
// cleaner.Cleaner interface.
func (c *Cleaner) Clean(html string) (string, error) {
	return c.Convert(html)
}

// Convert runs the full pipeline on one document. It fails fast on empty
// input and otherwise returns either a complete Markdown string or an
// error, never partial output.
func (c *Cleaner) Convert(html string) (string, error) {
	result := c.ConvertWithStats(html)
	if result.Error != nil {
		return "", result.Error
	}
	return result.Markdown, nil
}

// ConvertWithStats runs the pipeline and returns the Markdown together
// with the pruned node list and per-stage metrics.
func (c *Cleaner) ConvertWithStats(input string) *Result {
	start := time.Now()
	result := &Result{
		Stats: &Stats{InputBytes: len(input)},
	}

	if strings.TrimSpace(input) == "" {
		result.Error = ErrInvalidInput
		result.Stats.TotalDuration = time.Since(start)
		return result
	}

	parseStart := time.Now()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	result.Stats.ParseDuration = time.Since(parseStart)
	if err != nil {
		result.Error = fmt.Errorf("parse html: %w", err)
		result.Stats.TotalDuration = time.Since(start)
		return result
	}

	locateStart := time.Now()
	root := c.locateContent(doc, result)
	result.Stats.LocateDuration = time.Since(locateStart)
	if root == nil {
		// No body element: an empty but valid document.
		result.Stats.TotalDuration = time.Since(start)
		return result
	}

	buildStart := time.Now()
	tree := c.buildTree(root)
	result.Stats.BuildDuration = time.Since(buildStart)
	result.Stats.NodesBuilt = countNodes(tree.Children)

	pruneStart := time.Now()
	result.Nodes = Prune(tree)
	result.Stats.PruneDuration = time.Since(pruneStart)
	result.Stats.NodesKept = countNodes(result.Nodes)
	result.Stats.NodesPruned = result.Stats.NodesBuilt - result.Stats.NodesKept

	renderStart := time.Now()
	result.Markdown = Normalize(RenderMarkdown(result.Nodes))
	result.Stats.RenderDuration = time.Since(renderStart)

	result.Stats.OutputBytes = len(result.Markdown)
	result.Stats.TotalDuration = time.Since(start)
	return result
}

func countNodes(nodes []*Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + countNodes(n.Children)
	}
	return total
}
