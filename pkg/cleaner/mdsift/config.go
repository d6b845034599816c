// Package mdsift converts HTML documents into compact Markdown suitable
// for LLM consumption. It locates the main content area, builds a generic
// tag tree, prunes boilerplate and empty wrappers, and renders Markdown
// with normalized whitespace.
package mdsift

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Config defines the tunable parts of the pipeline. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// ContentSelectors are tried in order against the document; the first
	// element matched becomes the content root. Density scoring only runs
	// when none of them match.
	ContentSelectors []string `json:"content_selectors" validate:"dive,min=1"`

	// NonContentPatterns are regular expressions matched case-insensitively
	// against an element's concatenated class and id. Matching elements are
	// excluded as locator candidates and skipped by the tree builder.
	NonContentPatterns []string `json:"non_content_patterns" validate:"dive,min=1"`

	// MinContentTextLen disqualifies density candidates whose text is
	// shorter than this: they score zero regardless of structure.
	MinContentTextLen int `json:"min_content_text_len" validate:"gte=0"`

	// Density scoring weights.
	ParagraphScore     int `json:"paragraph_score" validate:"gte=0"`     // per descendant <p>
	ContainerScore     int `json:"container_score" validate:"gte=0"`     // per descendant article/main/content-classed element
	BoilerplatePenalty int `json:"boilerplate_penalty" validate:"gte=0"` // per descendant nav/aside/footer/header
	NoisePenalty       int `json:"noise_penalty" validate:"gte=0"`       // per descendant script/style/form
	DensityWeight      int `json:"density_weight" validate:"gte=0"`      // text length per descendant tag
}

// DefaultConfig returns the configuration used when New is given nil.
func DefaultConfig() *Config {
	return &Config{
		ContentSelectors: []string{
			"main",
			"article",
			"[role='main']",
			"#content",
			"#main-content",
			"#main",
			".content",
			".main-content",
			".post-content",
			".entry-content",
			".article-content",
			".article-body",
			".post-body",
			".story-body",
		},
		NonContentPatterns: []string{
			`\b(nav|navigation|navbar|menu|sidebar|footer|header|banner|breadcrumbs?)\b`,
			`\b(ads?|advert|advertisement|sponsored|social|share|sharing|comments?|related)\b`,
			`\b(cookie|consent|popup|modal|overlay|promo|subscribe|newsletter)\b`,
		},
		MinContentTextLen:  50,
		ParagraphScore:     100,
		ContainerScore:     200,
		BoilerplatePenalty: 150,
		NoisePenalty:       200,
		DensityWeight:      10,
	}
}

// PresetPermissive returns a config that favors recall over precision:
// the text-length floor is lowered and only hard chrome (navigation,
// cookie walls) is excluded. Use for short pages where the default floor
// would disqualify the real content.
func PresetPermissive() *Config {
	cfg := DefaultConfig()
	cfg.MinContentTextLen = 10
	cfg.NonContentPatterns = []string{
		`\b(nav|navigation|navbar|menu|sidebar)\b`,
		`\b(cookie|consent|popup|modal|overlay)\b`,
	}
	return cfg
}

// PresetAggressive returns a config tuned for articles and blog posts:
// a higher text floor, heavier boilerplate penalties, and extra exclusion
// patterns for engagement widgets.
func PresetAggressive() *Config {
	cfg := DefaultConfig()
	cfg.MinContentTextLen = 100
	cfg.BoilerplatePenalty = 300
	cfg.NoisePenalty = 400
	cfg.NonContentPatterns = append(cfg.NonContentPatterns,
		`\b(widget|toolbar|pagination|pager|carousel|slider)\b`,
		`\b(signup|login|register|paywall|meter)\b`,
	)
	return cfg
}

var validate = validator.New()

// Validate checks field constraints and compiles every non-content
// pattern. Call it before New when the config comes from user input.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, p := range c.NonContentPatterns {
		if _, err := regexp.Compile("(?i)" + p); err != nil {
			return fmt.Errorf("invalid non-content pattern %q: %w", p, err)
		}
	}
	return nil
}
