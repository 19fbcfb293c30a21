// Package board renders snapshot collections for the terminal: the kanban
// board, the chat transcript and the file listing.
package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/agent-dash-cli/internal/domain"
)

var columnTitles = map[domain.TaskStatus]string{
	domain.TaskStatusTodo:  "To do",
	domain.TaskStatusDoing: "Doing",
	domain.TaskStatusDone:  "Done",
}

// RenderBoard lays tasks out in three status columns, preserving the
// snapshot's task order inside each column.
func RenderBoard(tasks []domain.Task) string {
	return renderBoard(tasks, newStyles())
}

func renderBoard(tasks []domain.Task, s styles) string {
	columns := make([]string, 0, 3)
	for _, status := range domain.TaskStatuses() {
		columns = append(columns, renderColumn(status, tasks, s))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func renderColumn(status domain.TaskStatus, tasks []domain.Task, s styles) string {
	var cards []string
	for _, t := range tasks {
		if t.Status == status {
			cards = append(cards, renderCard(t, s))
		}
	}

	head := s.columnHead.Render(fmt.Sprintf("%s (%d)", columnTitles[status], len(cards)))
	if len(cards) == 0 {
		return s.column.Render(lipgloss.JoinVertical(lipgloss.Left, head, s.empty.Render("nothing here")))
	}
	body := append([]string{head}, cards...)
	return s.column.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

func renderCard(t domain.Task, s styles) string {
	lines := []string{s.cardTitle.Render(t.Title)}
	if t.Description != "" {
		lines = append(lines, s.cardMeta.Render(truncate(t.Description, 24)))
	}
	lines = append(lines, s.cardMeta.Render(t.ID))
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderHistory prints exchanges in storage order, oldest first.
func RenderHistory(exchanges []domain.ChatExchange) string {
	s := newStyles()
	if len(exchanges) == 0 {
		return s.empty.Render("No chat history yet.")
	}

	blocks := make([]string, 0, len(exchanges))
	for _, e := range exchanges {
		lines := []string{s.message.Render("you: " + e.Message)}
		if e.Source == domain.ChatSourcePending {
			lines = append(lines, s.source.Render("… waiting for a reply"))
		} else {
			lines = append(lines,
				s.response.Render("agent: "+e.Response),
				s.source.Render(fmt.Sprintf("%s · %s", e.Source, e.Timestamp.Format("2006-01-02 15:04"))),
			)
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return strings.Join(blocks, "\n\n")
}

func RenderFiles(files []domain.FileAsset) string {
	s := newStyles()
	if len(files) == 0 {
		return s.empty.Render("No files uploaded.")
	}

	lines := make([]string, 0, len(files))
	for _, f := range files {
		lines = append(lines, fmt.Sprintf("%s  %s",
			s.fileName.Render(f.Name),
			s.fileMeta.Render(fmt.Sprintf("%s · %s · %s", f.HumanSize(), f.MimeType, f.ID)),
		))
	}
	return strings.Join(lines, "\n")
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	return string(runes[:width-1]) + "…"
}
