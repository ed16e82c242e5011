package types

import "time"

// Task represents a unit of work on the board.
//
// comment_count and pr_count are optional in API responses; absent values
// decode to 0, which the scorers treat as "no activity" rather than an error.
type Task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Agent        Agent     `json:"agent"`
	CommentCount int       `json:"comment_count"`
	PRCount      int       `json:"pr_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// Subject returns the text a task is scored on: title and description joined.
func (t *Task) Subject() string {
	return t.Title + " " + t.Description
}

// Agent is the authoring agent of a task. Agents have no lifecycle of their
// own; they exist only as a projection of task authorship.
type Agent struct {
	Name string `json:"name"`
}

// Comment is a single discussion entry on a task. Comments are only carried
// through raw snapshots; the analytics engine works from comment_count.
type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
