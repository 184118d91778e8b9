// Package job defines jobs served by the example API.
package job

//go:generate go run github.com/Embers-of-the-Fire/serenum/cmd/serenum .

// Job is a unit of work.
type Job struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Status   Status   `json:"status"`
	Priority Priority `json:"priority"`
}
