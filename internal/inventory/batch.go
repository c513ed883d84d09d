package inventory

import "errors"

// Status represents the processing stage a batch is currently in.
// It is an open enum: unrecognized values from legacy files are carried
// through rather than rejected.
type Status string

const (
	StatusReceived  Status = "received"
	StatusWashing   Status = "washing"
	StatusDrying    Status = "drying"
	StatusRoasting  Status = "roasting"
	StatusCompleted Status = "completed"
)

var (
	// ErrNotFound is the expected outcome of a lookup for an unknown batch.
	// Callers branch on it with errors.Is; for updates it is a failure.
	ErrNotFound = errors.New("batch not found")

	// ErrDuplicateBatch is returned when adding a batch whose id is already
	// present in the inventory file.
	ErrDuplicateBatch = errors.New("batch id already exists")
)

// Batch is one lot of coffee beans received from a farmer.
type Batch struct {
	ID           string
	ReceivedDate string // YYYY-MM-DD, kept verbatim so legacy rows never fail a read
	FarmerID     string
	BeanType     string
	WeightKg     float64
	Status       Status
}
