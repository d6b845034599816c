package mdsift

import (
	"strings"
	"testing"
)

func text(s string) *Node { return &Node{Tag: TagText, Text: s} }

func TestRenderMarkdown_Headings(t *testing.T) {
	for level, tag := range []string{"h1", "h2", "h3", "h4", "h5", "h6"} {
		nodes := []*Node{{Tag: tag, Text: "Title"}}
		got := Normalize(RenderMarkdown(nodes))
		want := strings.Repeat("#", level+1) + " Title"
		if got != want {
			t.Errorf("%s: got %q, want %q", tag, got, want)
		}
	}
}

func TestRenderMarkdown_HeadingFlattensDescendants(t *testing.T) {
	nodes := []*Node{{Tag: "h2", Text: "Intro to", Children: []*Node{
		{Tag: "em", Children: []*Node{text("parsing")}},
	}}}
	got := Normalize(RenderMarkdown(nodes))
	if got != "## Intro to *parsing*" {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown_ParagraphSpacing(t *testing.T) {
	nodes := []*Node{
		{Tag: "p", Children: []*Node{text("First.")}},
		{Tag: "p", Children: []*Node{text("Second.")}},
	}
	got := Normalize(RenderMarkdown(nodes))
	if got != "First.\n\nSecond." {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown_InlineFormatting(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"strong", "**word**"},
		{"b", "**word**"},
		{"em", "*word*"},
		{"i", "*word*"},
		{"code", "`word`"},
	}
	for _, tt := range tests {
		nodes := []*Node{{Tag: tt.tag, Children: []*Node{text("word")}}}
		if got := Normalize(RenderMarkdown(nodes)); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestRenderMarkdown_PreBlock(t *testing.T) {
	nodes := []*Node{{Tag: "pre", Text: "x := 1"}}
	got := Normalize(RenderMarkdown(nodes))
	if got != "```\nx := 1\n```" {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown_Anchors(t *testing.T) {
	t.Run("with href", func(t *testing.T) {
		nodes := []*Node{{Tag: "a", Attributes: map[string]string{"href": "https://x.test"},
			Children: []*Node{text("label")}}}
		if got := Normalize(RenderMarkdown(nodes)); got != "[label](https://x.test)" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("without href", func(t *testing.T) {
		nodes := []*Node{{Tag: "a", Children: []*Node{text("label")}}}
		if got := Normalize(RenderMarkdown(nodes)); got != "[label]" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested formatting flattens inline", func(t *testing.T) {
		nodes := []*Node{{Tag: "a", Attributes: map[string]string{"href": "/x"}, Children: []*Node{
			text("very"),
			{Tag: "strong", Children: []*Node{text("bold")}},
		}}}
		if got := Normalize(RenderMarkdown(nodes)); got != "[very **bold**](/x)" {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderMarkdown_Blockquote(t *testing.T) {
	nodes := []*Node{{Tag: "blockquote", Children: []*Node{text("Words to live by.")}}}
	got := Normalize(RenderMarkdown(nodes))
	if got != "> Words to live by." {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown_Lists(t *testing.T) {
	t.Run("flat list", func(t *testing.T) {
		nodes := []*Node{{Tag: "ul", Children: []*Node{
			{Tag: "li", Children: []*Node{text("one")}},
			{Tag: "li", Children: []*Node{text("two")}},
		}}}
		got := Normalize(RenderMarkdown(nodes))
		if got != "- one\n- two" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("ordered list renders bullets", func(t *testing.T) {
		nodes := []*Node{{Tag: "ol", Children: []*Node{
			{Tag: "li", Children: []*Node{text("first")}},
		}}}
		got := Normalize(RenderMarkdown(nodes))
		if got != "- first" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("nested list indents two spaces per level", func(t *testing.T) {
		nodes := []*Node{{Tag: "ul", Children: []*Node{
			{Tag: "li", Children: []*Node{
				text("outer"),
				{Tag: "ul", Children: []*Node{
					{Tag: "li", Children: []*Node{text("inner")}},
				}},
			}},
			{Tag: "li", Children: []*Node{text("sibling")}},
		}}}
		got := Normalize(RenderMarkdown(nodes))
		if !strings.Contains(got, "- outer\n  - inner") {
			t.Errorf("expected nested indentation, got %q", got)
		}
		if !strings.Contains(got, "- sibling") {
			t.Errorf("expected sibling item, got %q", got)
		}
	})

	t.Run("item without text children flattens descendants", func(t *testing.T) {
		nodes := []*Node{{Tag: "ul", Children: []*Node{
			{Tag: "li", Children: []*Node{
				{Tag: "a", Attributes: map[string]string{"href": "#go"},
					Children: []*Node{text("Go")}},
			}},
		}}}
		got := Normalize(RenderMarkdown(nodes))
		if got != "- [Go](#go)" {
			t.Errorf("got %q", got)
		}
	})
}

func TestRenderMarkdown_ParagraphInsideListItem(t *testing.T) {
	// inList suppresses the paragraph's surrounding blank lines.
	nodes := []*Node{{Tag: "ul", Children: []*Node{
		{Tag: "li", Children: []*Node{
			text("note:"),
			{Tag: "p", Children: []*Node{text("inline para")}},
		}},
	}}}
	got := Normalize(RenderMarkdown(nodes))
	if got != "- note: inline para" {
		t.Errorf("got %q", got)
	}
}

func TestRenderMarkdown_UnknownTagsPassThrough(t *testing.T) {
	nodes := []*Node{{Tag: "table", Children: []*Node{
		{Tag: "tbody", Children: []*Node{
			{Tag: "tr", Children: []*Node{
				{Tag: "td", Children: []*Node{text("cell one")}},
				{Tag: "td", Children: []*Node{text("cell two")}},
			}},
		}},
	}}}
	got := Normalize(RenderMarkdown(nodes))
	if !strings.Contains(got, "cell one") || !strings.Contains(got, "cell two") {
		t.Errorf("pass-through should emit descendant content, got %q", got)
	}
	if strings.Contains(got, "<") {
		t.Errorf("pass-through must not emit markup, got %q", got)
	}
}

func TestRenderMarkdown_CaseInsensitiveTags(t *testing.T) {
	nodes := []*Node{{Tag: "H2", Text: "Loud Title"}}
	got := Normalize(RenderMarkdown(nodes))
	if got != "## Loud Title" {
		t.Errorf("got %q", got)
	}
}

func TestFlattenText(t *testing.T) {
	n := &Node{Tag: "h3", Text: "Start", Children: []*Node{
		text("middle"),
		{Tag: "code", Children: []*Node{text("x")}},
		{Tag: "div", Children: []*Node{text("deep")}},
	}}
	got := flattenText(n)
	if got != "Start middle `x` deep" {
		t.Errorf("got %q", got)
	}
}
