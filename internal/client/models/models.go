// Package models defines the data types shared by the query lifecycle,
// the sync scheduler and the history store.
package models

// Status describes the query lifecycle state:
// Idle -> Pending -> {Success, Failed} -> Idle (re-armed on next submission).
type Status int

const (
	StatusIdle Status = iota
	StatusPending
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPending:
		return "pending"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Source is one statutory citation attached to an answer. Code and Article
// are always present when a source exists; URL points at the authoritative
// text.
type Source struct {
	Code    string `json:"code"`
	Article string `json:"article"`
	Title   string `json:"title,omitempty"`
	URL     string `json:"url"`
}

// QueryOutcome is the terminal result of one submission. Sources is
// non-empty only when Status is StatusSuccess.
type QueryOutcome struct {
	Answer  string
	Sources []Source
	Status  Status
}

// HistoryEntry is one recorded question/answer exchange. Entries are
// immutable once created. Timestamp is epoch milliseconds at success time.
type HistoryEntry struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp int64  `json:"timestamp"`
}
