package entity

import "time"

// Task is an ownership record: a unit of work belonging to at most one user.
// OwnerID is nil for an unowned task; when set, only that owner may read,
// mutate or delete the task.
type Task struct {
	ID          int64      // Numeric identifier, generated by the database.
	Title       string     // Required, non-empty.
	Description *string    // Optional free-form text; nil when never set.
	IsRead      bool       // Read-state flag, defaults to false.
	OwnerID     *int64     // Owning user's ID, nil for an unowned task.
	CreatedAt   time.Time  // Timestamp of when this task was created.
	UpdatedAt   time.Time  // Timestamp of the last modification to this task.
}

// OwnedBy reports whether the task belongs to the given user.
// An unowned task belongs to nobody.
func (t *Task) OwnedBy(userID int64) bool {
	return t.OwnerID != nil && *t.OwnerID == userID
}
