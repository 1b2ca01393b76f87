// Package markup turns statuses into typed display nodes for the timeline view.
package markup

import (
	"strings"
	"time"

	"twitterui/internal/domain"
)

type Kind int

const (
	// Text is a plain run of status text.
	Text Kind = iota
	// Link is clickable text pointing at URL.
	Link
	// Author is the status author, linking to their profile.
	Author
	// Meta is de-emphasised decoration such as separators and timestamps.
	Meta
)

type Node struct {
	Kind Kind
	Text string
	URL  string
}

// ProfileURL builds the profile page of a user on the service at baseURL.
func ProfileURL(baseURL, user string) string {
	return strings.TrimRight(baseURL, "/") + "/" + user
}

// Status lays out one status as: author, separator, text with links, age.
func Status(st domain.Status, baseURL string, now time.Time) []Node {
	nodes := []Node{
		{Kind: Author, Text: st.Author, URL: ProfileURL(baseURL, st.Author)},
		{Kind: Meta, Text: ": "},
	}
	nodes = append(nodes, Body(st.Text)...)
	nodes = append(nodes, Node{Kind: Meta, Text: " (" + RelativeTime(now.Sub(st.CreatedAt)) + ")"})

	return nodes
}

// Body splits status text on whitespace and turns every token carrying a URL
// into a link node. Anything before the scheme stays plain text.
func Body(text string) []Node {
	if !strings.Contains(text, "http") {
		return []Node{{Kind: Text, Text: text}}
	}

	var nodes []Node
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, Node{Kind: Text, Text: plain.String()})
			plain.Reset()
		}
	}

	for i, tok := range strings.Fields(text) {
		if i > 0 {
			plain.WriteString(" ")
		}

		at := urlStart(tok)
		if at < 0 {
			plain.WriteString(tok)
			continue
		}

		plain.WriteString(tok[:at])
		flush()
		nodes = append(nodes, Node{Kind: Link, Text: tok[at:], URL: tok[at:]})
	}
	flush()

	return nodes
}

func urlStart(tok string) int {
	for _, scheme := range []string{"http://", "https://"} {
		if i := strings.Index(tok, scheme); i >= 0 {
			return i
		}
	}
	return -1
}
