package store

import (
	"fmt"
	"strconv"

	"github.com/MrJamesThe3rd/roastery/internal/inventory"
)

const batchFieldCount = 6

// decodeBatch maps the fixed field order
// batch_id,received_date,farmer_id,bean_type,weight_kg,status.
// Only the shape is validated: field count and a numeric weight.
func decodeBatch(fields []string) (*inventory.Batch, error) {
	if len(fields) != batchFieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d", batchFieldCount, len(fields))
	}

	weight, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return nil, fmt.Errorf("weight %q is not numeric", fields[4])
	}

	return &inventory.Batch{
		ID:           fields[0],
		ReceivedDate: fields[1],
		FarmerID:     fields[2],
		BeanType:     fields[3],
		WeightKg:     weight,
		Status:       inventory.Status(fields[5]),
	}, nil
}

// encodeBatch is the inverse of decodeBatch. Weights use the shortest exact
// representation, so whole numbers stay whole ("250", not "250.000000").
func encodeBatch(b *inventory.Batch) []string {
	return []string{
		b.ID,
		b.ReceivedDate,
		b.FarmerID,
		b.BeanType,
		strconv.FormatFloat(b.WeightKg, 'f', -1, 64),
		string(b.Status),
	}
}
