package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// Article is the text extracted from a fetched news page.
type Article struct {
	Title          string
	Text           string
	HasAuthor      bool
	HasPublishDate bool
}

// ArticleExtractor pulls title, body text, and byline metadata out of HTML.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new article extractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// Containers likely to hold the main article body, in preference order.
var contentContainers = []string{"article", "main"}

// Extract parses the HTML and assembles the article text. It prefers a
// semantic container (<article>, <main>) and falls back to joining the
// page's paragraphs.
func (e *ArticleExtractor) Extract(htmlContent string) (*Article, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, err
	}

	article := &Article{
		Title:          extractTitle(doc),
		HasAuthor:      hasAuthorMeta(doc),
		HasPublishDate: hasPublishDateMeta(doc),
	}

	for _, container := range contentContainers {
		if node := findElement(doc, container); node != nil {
			article.Text = collapseWhitespace(visibleText(node))
			break
		}
	}
	if article.Text == "" {
		article.Text = collapseWhitespace(joinParagraphs(doc))
	}

	return article, nil
}

// extractTitle tries og:title, then <h1>, then <title>.
func extractTitle(doc *html.Node) string {
	if title := metaContent(doc, "property", "og:title"); title != "" {
		return title
	}
	if h1 := findElement(doc, "h1"); h1 != nil {
		if text := collapseWhitespace(visibleText(h1)); text != "" {
			return text
		}
	}
	if node := findElement(doc, "title"); node != nil {
		return collapseWhitespace(visibleText(node))
	}
	return ""
}

func hasAuthorMeta(doc *html.Node) bool {
	if metaContent(doc, "name", "author") != "" {
		return true
	}
	if metaContent(doc, "property", "article:author") != "" {
		return true
	}
	// rel="author" links and byline classes are common fallbacks.
	found := false
	walkElements(doc, func(n *html.Node) {
		if found || n.Data != "a" && n.Data != "span" && n.Data != "div" {
			return
		}
		for _, attr := range n.Attr {
			if attr.Key == "rel" && attr.Val == "author" {
				found = true
			}
			if attr.Key == "class" && strings.Contains(strings.ToLower(attr.Val), "byline") {
				found = true
			}
		}
	})
	return found
}

func hasPublishDateMeta(doc *html.Node) bool {
	if metaContent(doc, "property", "article:published_time") != "" {
		return true
	}
	if metaContent(doc, "name", "date") != "" {
		return true
	}
	found := false
	walkElements(doc, func(n *html.Node) {
		if n.Data == "time" {
			found = true
		}
	})
	return found
}

// metaContent returns the content attribute of the first <meta> whose
// key attribute equals value.
func metaContent(doc *html.Node, key, value string) string {
	content := ""
	walkElements(doc, func(n *html.Node) {
		if content != "" || n.Data != "meta" {
			return
		}
		matched := false
		candidate := ""
		for _, attr := range n.Attr {
			if attr.Key == key && strings.EqualFold(attr.Val, value) {
				matched = true
			}
			if attr.Key == "content" {
				candidate = strings.TrimSpace(attr.Val)
			}
		}
		if matched {
			content = candidate
		}
	})
	return content
}

// findElement returns the first element with the given tag name.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// walkElements visits every element node in document order.
func walkElements(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkElements(c, visit)
	}
}

// visibleText extracts text nodes, skipping script/style/nav chrome.
func visibleText(n *html.Node) string {
	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "nav", "footer", "header", "aside":
				return
			}
		}
		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(n)
	return buf.String()
}

// joinParagraphs concatenates the text of every <p> element.
func joinParagraphs(doc *html.Node) string {
	var parts []string
	walkElements(doc, func(n *html.Node) {
		if n.Data == "p" {
			if text := strings.TrimSpace(visibleText(n)); text != "" {
				parts = append(parts, text)
			}
		}
	})
	return strings.Join(parts, " ")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
