package store

import (
	"fmt"
	"strconv"

	"github.com/MrJamesThe3rd/roastery/internal/processing"
)

const recordFieldCount = 5

// decodeRecord maps the fixed field order
// batch_id,process_type,start_date,end_date,weight_after.
// An empty end_date marks an in-progress stage.
func decodeRecord(fields []string) (*processing.Record, error) {
	if len(fields) != recordFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", recordFieldCount, len(fields))
	}

	weight, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, fmt.Errorf("weight %q is not numeric", fields[4])
	}

	return &processing.Record{
		BatchID:       fields[0],
		Type:          processing.ProcessType(fields[1]),
		StartDate:     fields[2],
		EndDate:       fields[3],
		WeightAfterKg: weight,
	}, nil
}

func encodeRecord(r *processing.Record) []string {
	return []string{
		r.BatchID,
		string(r.Type),
		r.StartDate,
		r.EndDate,
		strconv.FormatFloat(r.WeightAfterKg, 'f', -1, 64),
	}
}
