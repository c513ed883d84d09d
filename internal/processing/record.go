package processing

// ProcessType is the transformation applied to a batch during one stage.
// Like inventory.Status it is an open enum.
type ProcessType string

const (
	TypeWashing  ProcessType = "washing"
	TypeDrying   ProcessType = "drying"
	TypeRoasting ProcessType = "roasting"
)

// Record is one processing stage applied to a batch. The batch id is an
// advisory link to the inventory file: the store does not verify it at
// write time. A batch accumulates one record per stage, in file order.
type Record struct {
	BatchID       string
	Type          ProcessType
	StartDate     string
	EndDate       string // empty while the stage is still in progress
	WeightAfterKg float64
}

// Completed reports whether the stage has finished.
func (r *Record) Completed() bool {
	return r.EndDate != ""
}
