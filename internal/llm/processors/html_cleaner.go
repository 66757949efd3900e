package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner strips markup from scraped job descriptions. The upstream
// scraper returns whatever the job board rendered, which can include script
// tags, tracking pixels and layout scaffolding.
type HTMLCleaner struct {
	removeTags []string
}

// NewHTMLCleaner creates a new HTML cleaner instance
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"form", "input", "button", "select", "textarea",
			"nav", "header", "footer", "aside", "menu",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "title", "base",
		},
	}
}

// ContainsMarkup reports whether the text looks like it carries HTML tags
func (hc *HTMLCleaner) ContainsMarkup(text string) bool {
	return strings.Contains(text, "<") && strings.Contains(text, ">")
}

// ExtractText returns the plain-text content of an HTML fragment with
// clutter elements removed and whitespace collapsed. On parse failure the
// input is returned unchanged.
func (hc *HTMLCleaner) ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	return hc.cleanExtractedText(doc.Text())
}

// cleanExtractedText collapses whitespace and removes boilerplate phrases
// that job boards inject for no-JS clients
func (hc *HTMLCleaner) cleanExtractedText(text string) string {
	whitespaceRegex := regexp.MustCompile(`[ \t]+`)
	text = whitespaceRegex.ReplaceAllString(text, " ")

	newlineRegex := regexp.MustCompile(`\n{3,}`)
	text = newlineRegex.ReplaceAllString(text, "\n\n")

	patterns := []string{
		`\bJavaScript\s+is\s+disabled\b.*?enabled\.`,
		`\bPlease\s+enable\s+JavaScript\b[^\n]*`,
		`\bThis\s+site\s+requires\s+JavaScript\b[^\n]*`,
	}
	for _, pattern := range patterns {
		regex := regexp.MustCompile(pattern)
		text = regex.ReplaceAllString(text, "")
	}

	return strings.TrimSpace(text)
}
