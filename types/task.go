package types

// Task is a logged unit of time owned by one user.
type Task struct {
	// ID is the unique identifier of the task, assigned by storage.
	ID int `json:"id" db:"id"`

	// UserID references the owning user. It is set on creation and
	// never changes afterwards.
	UserID int `json:"user_id" db:"user_id"`

	// Description is free text describing what the time went to.
	Description string `json:"description" db:"description"`

	// Category tags the task. "Productive" (case-insensitive) is the
	// only value with semantic meaning: every other category counts
	// against the daily hour budget.
	Category string `json:"category" db:"category"`

	// Hours is the amount of time spent, in hours.
	Hours float64 `json:"hours" db:"hours"`
}
