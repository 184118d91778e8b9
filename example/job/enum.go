//go:build serenum

package job

import "github.com/Embers-of-the-Fire/serenum"

// Status is the state of a job.
type Status int

const (
	StatusTodo Status = iota
	StatusDoing
	StatusDone
)

// Priority is the urgency of a job.
type Priority string

const (
	PriorityLow    Priority = "L"
	PriorityNormal Priority = "N"
	PriorityHigh   Priority = "H"
)

var mod = serenum.Module(
	serenum.RenameTrimCommonWordPrefix(),
	serenum.RenameToSnake(),
	serenum.MarshalJSON(true),
	serenum.MarshalText(true),
	serenum.SQL(true),
)

var (
	// ParseStatus parses the text of a job status.
	ParseStatus = serenum.EnumErr[Status](mod,
		serenum.Texts("StatusTexts"),
	)

	// ParsePriority parses the text of a job priority.
	ParsePriority = serenum.EnumErr[Priority](mod,
		serenum.Texts("PriorityTexts"),
	)
)
