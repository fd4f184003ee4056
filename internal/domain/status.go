package domain

// Status is the task lifecycle label. No command in the current set
// transitions a task out of StatusNew; the other values exist for rows
// written by earlier versions of the tracker.
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// StatusLabels maps a status to its human-readable label. The table is
// passed into rendering as configuration rather than consulted as a
// global, so formatting stays testable.
type StatusLabels map[Status]string

// UnknownStatusLabel is returned for any status missing from the table.
const UnknownStatusLabel = "❓ unknown"

// DefaultStatusLabels returns the standard label table.
func DefaultStatusLabels() StatusLabels {
	return StatusLabels{
		StatusNew:        "🆕 new",
		StatusInProgress: "⚙️ in progress",
		StatusDone:       "✅ done",
	}
}

// Label returns the human-readable label for the given status. An
// unrecognized status maps to UnknownStatusLabel; rendering never fails.
func (l StatusLabels) Label(status Status) string {
	if label, ok := l[status]; ok {
		return label
	}
	return UnknownStatusLabel
}
