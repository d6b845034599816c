// Package cleaner provides interfaces and implementations for cleaning
// HTML content. Cleaners transform raw HTML into a compact form suitable
// for LLM consumption; the mdsift subpackage is the default
// implementation and converts to Markdown.
package cleaner

// Cleaner transforms HTML content into a cleaner format.
type Cleaner interface {
	// Clean transforms the input HTML. The output format depends on the
	// implementation (markdown, plain text, etc.).
	Clean(html string) (string, error)

	// Name returns the cleaner type for logging/debugging.
	Name() string
}
