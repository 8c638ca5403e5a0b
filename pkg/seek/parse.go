package seek

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const automationAttr = "data-automation"

var jobIDPattern = regexp.MustCompile(`/job/(\d+)`)

// ParseCards extracts up to limit job cards from a result page.
// Cards are <article> elements, or data-automation="job-card" blocks on older layouts.
func ParseCards(r io.Reader, siteURL string, limit int) ([]Card, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	nodes := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "article"
	})
	if len(nodes) == 0 {
		nodes = findAll(doc, hasAutomation("job-card"))
	}
	if limit > 0 && len(nodes) > limit {
		nodes = nodes[:limit]
	}

	cards := make([]Card, 0, len(nodes))
	for _, n := range nodes {
		cards = append(cards, parseCard(n, siteURL))
	}
	return cards, nil
}

// JobIDFromURL returns the numeric Seek job id in a job link, if any
func JobIDFromURL(jobURL string) string {
	m := jobIDPattern.FindStringSubmatch(jobURL)
	if m == nil {
		return ""
	}
	return m[1]
}

func parseCard(article *html.Node, siteURL string) Card {
	var card Card

	if title := findFirst(article, hasAutomation("jobTitle")); title != nil {
		card.Title = textOf(title)

		link := title
		if title.Data != "a" {
			link = findFirst(title, isElement("a"))
		}
		if href := attr(link, "href"); href != "" {
			card.JobURL = absolute(siteURL, href)
		}
	}

	if company := findFirst(article, hasAutomation("jobCompany")); company != nil {
		card.Company = textOf(company)
		if href := attr(findFirst(company, isElement("a")), "href"); href != "" {
			card.CompanyURL = absolute(siteURL, href)
		}
	}

	if loc := findFirst(article, hasAutomation("jobLocation")); loc != nil {
		card.Location = textOf(loc)
	}

	if teaser := findFirst(article, hasAutomation("jobShortDescription")); teaser != nil {
		card.Description = textOf(teaser)
	}

	card.JobID = JobIDFromURL(card.JobURL)
	return card
}

func absolute(siteURL, href string) string {
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return siteURL + href
}

func hasAutomation(value string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, automationAttr) == value
	}
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

func attr(n *html.Node, key string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findFirst searches the descendants of n, excluding n itself
func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if match(c) {
			return c
		}
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects matching nodes in document order without descending into matches
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if match(c) {
				out = append(out, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
