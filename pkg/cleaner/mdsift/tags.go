package mdsift

// Sentinel tags for nodes that do not correspond to an HTML element.
const (
	// TagRoot is the synthetic document root produced by the tree builder.
	TagRoot = "root"
	// TagText marks a bare text run. Text nodes never have children and
	// always carry non-empty trimmed text.
	TagText = "text"
)

// skipTags are never carried into the node tree. The builder returns
// nothing for them and does not recurse: media, scripting, chrome,
// interactive widgets, and void elements.
var skipTags = map[string]bool{
	// Media and embeds
	"img": true, "picture": true, "video": true, "audio": true,
	"source": true, "track": true, "svg": true, "canvas": true,
	"map": true, "area": true, "iframe": true, "embed": true,
	"object": true, "param": true,

	// Scripting and templates
	"script": true, "style": true, "noscript": true, "template": true,

	// Navigation chrome
	"nav": true, "aside": true,

	// Forms and interactive controls
	"form": true, "input": true, "button": true, "select": true,
	"textarea": true, "label": true, "option": true, "optgroup": true,
	"fieldset": true, "legend": true, "datalist": true, "dialog": true,

	// Document chrome
	"html": true, "head": true, "body": true, "title": true,
	"meta": true, "link": true, "base": true,

	// Void separators
	"br": true, "hr": true, "wbr": true,
}

// headingTags maps h1..h6.
var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// markdownFormat maps a tag to its Markdown prefix/suffix pair. Tags in
// this map are always retained by the pruner, even when empty.
var markdownFormat = map[string][2]string{
	"strong":     {"**", "**"},
	"b":          {"**", "**"},
	"em":         {"*", "*"},
	"i":          {"*", "*"},
	"code":       {"`", "`"},
	"pre":        {"```\n", "\n```"},
	"blockquote": {"> ", ""},
	"a":          {"[", "]"},
}

// structuralTags are containers whose shape the renderer depends on. They
// earn retention through surviving children rather than on their own: an
// empty one is elided entirely.
var structuralTags = map[string]bool{
	"div": true, "section": true, "p": true,
	"ul": true, "ol": true, "li": true, "blockquote": true,
}

// mixedContentTags preserve the interleaving of literal text runs and
// child elements as ordered children. All other tags capture only their
// own direct text and recurse into child elements, losing interleaving.
// Do not extend this set without revisiting the renderer's interleaving
// rules.
var mixedContentTags = map[string]bool{
	"p": true, "div": true, "span": true,
	"li": true, "td": true, "th": true,
	"blockquote": true,
	"strong":     true, "b": true, "em": true, "i": true,
	"a": true,
}
