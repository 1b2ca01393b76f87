package ui

import (
	"fmt"
	"strings"
	"time"

	"twitterui/internal/domain"
	"twitterui/internal/markup"
)

func renderNode(n markup.Node) string {
	switch n.Kind {
	case markup.Author:
		return authorStyle.Render(n.Text)
	case markup.Link:
		return linkStyle.Render(n.Text)
	case markup.Meta:
		return metaStyle.Render(n.Text)
	default:
		return textStyle.Render(n.Text)
	}
}

// renderTimeline lays out the timeline as wrapped blocks, newest first.
func renderTimeline(timeline domain.Timeline, session domain.Session, baseURL string, width int, now time.Time) string {
	if len(timeline) == 0 {
		return hintStyle.Render("Nothing to show yet.")
	}

	blocks := make([]string, 0, len(timeline))
	for _, st := range timeline {
		var b strings.Builder
		for _, n := range markup.Status(st, baseURL, now) {
			b.WriteString(renderNode(n))
		}

		block := statusBlock(session.Owns(st))
		if width > 0 {
			block = block.Width(width)
		}
		blocks = append(blocks, block.Render(b.String()))
	}

	return strings.Join(blocks, "\n")
}

func charactersLeft(text string) string {
	left := maxStatusLength - len([]rune(text))
	noun := "characters"
	if left == 1 || left == -1 {
		noun = "character"
	}
	return counterStyle.Render(fmt.Sprintf("%d %s left.", left, noun))
}
