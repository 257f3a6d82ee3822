package pageview

import (
	"io"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/bnema/tabshell/internal/application/port"
)

// Document is an HTML page flattened for a character grid.
type Document struct {
	Title string
	Text  string
	Links []port.PageLink
}

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
	atom.Svg:      true,
	atom.Iframe:   true,
	atom.Head:     true,
}

var blocks = map[atom.Atom]bool{
	atom.P: true, atom.Div: true, atom.Section: true, atom.Article: true,
	atom.Header: true, atom.Footer: true, atom.Nav: true, atom.Main: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Ul: true, atom.Ol: true, atom.Table: true, atom.Tr: true,
	atom.Blockquote: true, atom.Pre: true, atom.Form: true, atom.Aside: true,
}

type renderer struct {
	base  *url.URL
	doc   Document
	b     strings.Builder
	pre   int
	space bool
}

// Render converts HTML into text with numbered link markers. Relative links
// are resolved against base.
func Render(r io.Reader, base string) (Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return Document{}, err
	}

	rd := &renderer{}
	if u, err := url.Parse(base); err == nil {
		rd.base = u
	}
	rd.doc.Title = findTitle(root)
	rd.walk(root)
	rd.doc.Text = tidy(rd.b.String())
	return rd.doc, nil
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title && n.FirstChild != nil {
		return strings.TrimSpace(n.FirstChild.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}

func (r *renderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.text(n.Data)
		return
	case html.ElementNode:
		if skipped[n.DataAtom] {
			return
		}
	}

	switch n.DataAtom {
	case atom.Br:
		r.newline()
		return
	case atom.Li:
		r.newline()
		r.b.WriteString("• ")
		r.space = true
	case atom.Pre:
		r.pre++
		defer func() { r.pre-- }()
	}

	if blocks[n.DataAtom] {
		r.paragraph()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}

	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		r.link(n)
	}
	if blocks[n.DataAtom] {
		r.paragraph()
	}
}

func (r *renderer) text(s string) {
	if r.pre > 0 {
		r.b.WriteString(s)
		return
	}
	for _, word := range strings.Fields(s) {
		if !r.space && r.b.Len() > 0 {
			r.b.WriteByte(' ')
		}
		r.b.WriteString(word)
		r.space = false
	}
}

func (r *renderer) link(n *html.Node) {
	href := attr(n, "href")
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return
	}
	target := href
	if r.base != nil {
		if u, err := r.base.Parse(href); err == nil {
			target = u.String()
		}
	}
	r.doc.Links = append(r.doc.Links, port.PageLink{Text: strings.TrimSpace(textOf(n)), URL: target})
	r.b.WriteString("[" + strconv.Itoa(len(r.doc.Links)) + "]")
}

func (r *renderer) newline() {
	r.b.WriteByte('\n')
	r.space = true
}

func (r *renderer) paragraph() {
	r.b.WriteString("\n\n")
	r.space = true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// tidy trims trailing spaces and collapses runs of blank lines.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, l := range lines {
		l = strings.TrimRight(l, " \t")
		if strings.TrimSpace(l) == "" {
			if blank {
				continue
			}
			blank = true
			out = append(out, "")
			continue
		}
		blank = false
		out = append(out, strings.TrimLeft(l, " "))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
