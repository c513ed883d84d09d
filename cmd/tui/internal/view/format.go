package view

import (
	"context"
	"fmt"
	"time"
)

const fileTimeout = 5 * time.Second

// FormatWeight formats a weight in kilograms for display.
func FormatWeight(kg float64) string {
	return fmt.Sprintf("%.1f kg", kg)
}

// FormatPct formats a percentage with the report's two-decimal precision.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.2f%%", pct)
}

// OpCtx returns a context with a standard timeout for store operations.
func OpCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), fileTimeout)
}
