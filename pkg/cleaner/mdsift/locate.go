package mdsift

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// locateContent selects the element most likely to hold the primary
// content, or nil when the document has no body. Semantic selectors are
// tried first in configured order; the first hit wins outright. Only when
// none match does density scoring run over the body and its direct
// children.
func (c *Cleaner) locateContent(doc *goquery.Document, result *Result) *goquery.Selection {
	for _, selector := range c.config.ContentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			result.Stats.Strategy = "selector:" + selector
			return sel
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		result.AddWarning("locate", "document has no body", "")
		return nil
	}

	// Body is the initial best: a child must strictly beat it, and ties
	// favor the earlier candidate.
	best := body
	bestScore := c.scoreCandidate(body)
	body.Children().Each(func(_ int, s *goquery.Selection) {
		if c.isNonContent(s) {
			return
		}
		if score := c.scoreCandidate(s); score > bestScore {
			best, bestScore = s, score
		}
	})

	result.Stats.Strategy = "density"
	result.Stats.ContentScore = bestScore
	return best
}

// scoreCandidate computes the content density score for one candidate.
// Candidates below the minimum text length are disqualified outright; the
// final score is floored at zero.
func (c *Cleaner) scoreCandidate(s *goquery.Selection) int {
	textLen := len(strings.TrimSpace(s.Text()))
	if textLen < c.config.MinContentTextLen {
		return 0
	}

	score := textLen
	score += c.config.ParagraphScore * s.Find("p").Length()
	score += c.config.ContainerScore * s.Find("article, main, [class*='content']").Length()
	score -= c.config.BoilerplatePenalty * s.Find("nav, aside, footer, header").Length()
	score -= c.config.NoisePenalty * s.Find("script, style, form").Length()

	if tags := s.Find("*").Length(); tags > 0 {
		score += c.config.DensityWeight * textLen / tags
	}

	if score < 0 {
		return 0
	}
	return score
}

// isNonContent reports whether the element's class/id marks it as
// navigation, chrome, or promotional noise.
func (c *Cleaner) isNonContent(s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	id, _ := s.Attr("id")
	subject := strings.TrimSpace(class + " " + id)
	if subject == "" {
		return false
	}
	for _, re := range c.nonContent {
		if re.MatchString(subject) {
			return true
		}
	}
	return false
}
