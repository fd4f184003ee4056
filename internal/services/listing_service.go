package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"teamplay/internal/domain"
)

const (
	categoryRule = "========================================"
	taskRule     = "----------------------------------------"

	// EmptyListMessage is the single chunk returned when no tasks exist
	EmptyListMessage = "📋 The task list is empty. Add the first task with /add"
)

// utf8BOM marks the CSV artifact as UTF-8 so spreadsheet tools keep
// non-ASCII text intact
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// listingServiceImpl implements the ListingService interface
type listingServiceImpl struct {
	labels     domain.StatusLabels
	chunkLimit int
	timeFormat string
}

// NewListingService creates a new ListingService instance. The status label
// table and size limit come in as configuration so rendering stays
// independent of presentation globals.
func NewListingService(labels domain.StatusLabels, chunkLimit int, timeFormat string) ListingService {
	return &listingServiceImpl{
		labels:     labels,
		chunkLimit: chunkLimit,
		timeFormat: timeFormat,
	}
}

// RenderList renders tasks grouped by category and splits the result into
// transport-sized chunks. Input is expected pre-grouped by category, the
// ordering the repository guarantees; groups preserve the order categories
// first appear.
func (l *listingServiceImpl) RenderList(tasks []*domain.Task) []string {
	if len(tasks) == 0 {
		return []string{EmptyListMessage}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 Total tasks: %d\n\n", len(tasks))

	for _, group := range groupByCategory(tasks) {
		fmt.Fprintf(&b, "%s\n📂 %s (%d)\n%s\n\n", categoryRule, group.category, len(group.tasks), categoryRule)

		for _, task := range group.tasks {
			fmt.Fprintf(&b, "#%d | %s\n", task.ID, l.labels.Label(task.Status))
			fmt.Fprintf(&b, "📝 %s\n", task.Text)
			fmt.Fprintf(&b, "👤 %s | %s\n", task.Author, task.CreatedAt.Format(l.timeFormat))
			fmt.Fprintf(&b, "%s\n", taskRule)
		}

		b.WriteString("\n")
	}

	return splitChunks(b.String(), l.chunkLimit)
}

// RenderCSV renders tasks as a complete in-memory CSV artifact with a BOM
// prefix and human-readable status labels
func (l *listingServiceImpl) RenderCSV(tasks []*domain.Task) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	writer := csv.NewWriter(&buf)

	header := []string{"ID", "Text", "Category", "Status", "Author", "CreatedAt"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, task := range tasks {
		row := []string{
			strconv.FormatInt(task.ID, 10),
			task.Text,
			task.Category,
			l.labels.Label(task.Status),
			task.Author,
			task.CreatedAt.Format(l.timeFormat),
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// categoryGroup is one contiguous run of tasks sharing a category
type categoryGroup struct {
	category string
	tasks    []*domain.Task
}

// groupByCategory splits the pre-ordered task list into contiguous
// category groups, preserving first-appearance order
func groupByCategory(tasks []*domain.Task) []categoryGroup {
	var groups []categoryGroup
	index := make(map[string]int)

	for _, task := range tasks {
		i, seen := index[task.Category]
		if !seen {
			index[task.Category] = len(groups)
			groups = append(groups, categoryGroup{category: task.Category})
			i = len(groups) - 1
		}
		groups[i].tasks = append(groups[i].tasks, task)
	}

	return groups
}

// splitChunks splits text into pieces of at most limit runes. Boundaries
// may fall mid-line; concatenating the chunks reproduces the input exactly.
func splitChunks(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}
