package models

// Group is a ledger of shared expenses.
// Members and expenses belong to exactly one group and are deleted with it.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Trip to Da Lat").
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}
