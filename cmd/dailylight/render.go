package main

import (
	"strconv"
	"strings"

	"github.com/BloggingApp/dailylight-service/internal/dto"
	"github.com/BloggingApp/dailylight-service/internal/model"
	"github.com/BloggingApp/dailylight-service/internal/scripture"
	"github.com/charmbracelet/lipgloss"
)

var (
	dateStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("178")).Bold(true)
	quoteStyle     = lipgloss.NewStyle().Italic(true).Bold(true)
	referenceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Underline(true)
	mutedStyle     = lipgloss.NewStyle().Faint(true)
)

const displayDateLayout = "Monday, January 2, 2006"

func renderSegments(segs []scripture.Segment) string {
	var b strings.Builder
	for _, seg := range segs {
		if seg.Reference {
			b.WriteString(referenceStyle.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

func renderToday(view *dto.TodayView, liked bool) string {
	post := view.Post

	var b strings.Builder
	b.WriteString(dateStyle.Render(post.Date.Format(displayDateLayout)))
	b.WriteString("\n\n")
	b.WriteString(quoteStyle.Render("“" + post.Quote + "”"))
	b.WriteString("\n")
	b.WriteString(referenceStyle.Render(post.Reference))
	b.WriteString("\n\n")
	for _, para := range view.Paragraphs {
		b.WriteString(renderSegments(para))
		b.WriteString("\n")
	}
	if refs := scripture.References(post.Insight); len(refs) > 0 {
		styled := make([]string, len(refs))
		for i, ref := range refs {
			styled[i] = referenceStyle.Render(ref)
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("See also: "))
		b.WriteString(strings.Join(styled, mutedStyle.Render(", ")))
		b.WriteString("\n")
	}
	if post.Remember != nil {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Remember: "))
		b.WriteString(*post.Remember)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	likes := mutedStyle.Render("♥ ") + strconv.FormatInt(post.Likes, 10)
	if liked {
		likes += mutedStyle.Render(" (liked)")
	}
	b.WriteString(likes)
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("Share: ") + view.Share.Twitter + "\n")
	b.WriteString(mutedStyle.Render("       ") + view.Share.WhatsApp + "\n")
	b.WriteString(mutedStyle.Render("       ") + view.Share.Facebook + "\n")
	b.WriteString(mutedStyle.Render("id: " + post.ID))
	b.WriteString("\n")
	return b.String()
}

func renderEmptyDay() string {
	return dateStyle.Render("Silence") + "\n" +
		quoteStyle.Render("A quiet moment of reflection awaits.") + "\n" +
		mutedStyle.Render("No insight found for this day.") + "\n"
}

func renderArchiveEntry(post model.Post) string {
	return dateStyle.Render(post.Date.Format("January 2, 2006")) + "\n" +
		quoteStyle.Render("“"+post.Quote+"”") + "\n" +
		referenceStyle.Render(post.Reference) + mutedStyle.Render("  "+post.Date.Format(model.DateLayout)) + "\n"
}
