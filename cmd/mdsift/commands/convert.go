package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mdsift/internal/logger"
	"github.com/jmylchreest/mdsift/internal/output"
	"github.com/jmylchreest/mdsift/internal/version"
	"github.com/jmylchreest/mdsift/pkg/cleaner/mdsift"
)

// document wraps a conversion result for structured output.
type document struct {
	Source   string         `json:"source" yaml:"source"`
	Markdown string         `json:"markdown" yaml:"markdown"`
	Nodes    []*mdsift.Node `json:"nodes,omitempty" yaml:"nodes,omitempty"`
	Stats    *mdsift.Stats  `json:"stats,omitempty" yaml:"stats,omitempty"`
}

var convertCmd = &cobra.Command{
	Use:   "convert [url-or-file]",
	Short: "Convert an HTML document to compact Markdown",
	Long: `Convert reads HTML from a URL, a file, or stdin and writes the
distilled Markdown.

Structured formats (json, jsonl, yaml) wrap the markdown in a document
object and can include the intermediate node tree with --nodes.

Examples:
  mdsift convert https://example.com/article
  mdsift convert -f page.html -o article.md
  cat page.html | mdsift convert --format yaml --nodes
  mdsift convert -f page.html --stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	flags := convertCmd.Flags()
	flags.StringP("file", "f", "", "read HTML from file")
	flags.StringP("output", "o", "", "write to file instead of stdout")
	flags.String("format", "markdown", "output format: markdown, json, jsonl, yaml")
	flags.Bool("nodes", false, "include the intermediate node tree in structured output")
	flags.Bool("stats", false, "print conversion stats to stderr")
	flags.String("preset", "", "config preset: permissive, aggressive")
	flags.Int("min-text", 0, "minimum candidate text length for content scoring")
	flags.StringSlice("select", nil, "content selectors tried before the built-in ones")
}

func runConvert(cmd *cobra.Command, args []string) error {
	html, source, err := readInput(cmd, args)
	if err != nil {
		logError("%v", err)
		return err
	}

	cfg, err := configForPreset(cmd)
	if err != nil {
		logError("%v", err)
		return err
	}
	if minText, _ := cmd.Flags().GetInt("min-text"); minText > 0 {
		cfg.MinContentTextLen = minText
	}
	if extra, _ := cmd.Flags().GetStringSlice("select"); len(extra) > 0 {
		cfg.ContentSelectors = append(extra, cfg.ContentSelectors...)
	}
	if err := cfg.Validate(); err != nil {
		logError("%v", err)
		return err
	}

	logger.Debug("converting", "source", source, "bytes", len(html))

	result := mdsift.New(cfg).ConvertWithStats(html)
	if result.Error != nil {
		logError("%v", result.Error)
		return result.Error
	}
	for _, w := range result.Warnings {
		logger.Warn("conversion warning", "phase", w.Phase, "message", w.Message)
	}
	logger.Debug("converted",
		"strategy", result.Stats.Strategy,
		"nodes_kept", result.Stats.NodesKept,
		"reduction_pct", fmt.Sprintf("%.1f", result.Stats.ReductionPercent()))

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats {
		fmt.Fprint(os.Stderr, result.Stats.String())
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" || format == "markdown" {
		_, err := fmt.Fprintln(out, result.Markdown)
		return err
	}

	writer, err := output.NewWriter(out, output.Format(format))
	if err != nil {
		return err
	}
	doc := document{
		Source:   source,
		Markdown: result.Markdown,
		Stats:    result.Stats,
	}
	if withNodes, _ := cmd.Flags().GetBool("nodes"); withNodes {
		doc.Nodes = result.Nodes
	}
	if err := writer.Write(doc); err != nil {
		return err
	}
	return writer.Close()
}

func configForPreset(cmd *cobra.Command) (*mdsift.Config, error) {
	preset, _ := cmd.Flags().GetString("preset")
	switch preset {
	case "":
		return mdsift.DefaultConfig(), nil
	case "permissive":
		return mdsift.PresetPermissive(), nil
	case "aggressive":
		return mdsift.PresetAggressive(), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want permissive or aggressive)", preset)
	}
}

// readInput resolves the HTML source: -f file, a URL or file argument, or
// stdin when neither is given.
func readInput(cmd *cobra.Command, args []string) (html, source string, err error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		html, err = readFile(path)
		return html, path, err
	}

	if len(args) > 0 {
		arg := args[0]
		if strings.HasPrefix(arg, "http://") || strings.HasPrefix(arg, "https://") {
			html, err = fetchURL(arg)
			return html, arg, err
		}
		html, err = readFile(arg)
		return html, arg, err
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "stdin", nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading file %s: %w", path, err)
	}
	return string(data), nil
}

func fetchURL(url string) (string, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", "mdsift/"+version.String())
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(data), nil
}
