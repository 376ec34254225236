package aggregates

import (
	"fmt"
	"strings"
	"time"
)

// maritimeCodePrefix is the fixed transformation applied to an operation code
// to derive its maritime detail code. The derived code needs no independent
// uniqueness check because it derives from an already-unique parent.
const maritimeCodePrefix = "OM-"

// DeriveMaritimeOperationCode returns the detail code for a base operation
// code, e.g. "OP-2024-0001" -> "OM-OP-2024-0001".
func DeriveMaritimeOperationCode(operationCode string) string {
	return maritimeCodePrefix + strings.TrimSpace(operationCode)
}

// SequencePeriod renders t as the YYMM period key used by period-scoped
// sequence codes.
func SequencePeriod(t time.Time) string {
	return t.UTC().Format("0601")
}

// FormatSequenceCode renders a period-scoped code such as "INC-2405-0001".
func FormatSequenceCode(prefix, period string, ordinal int) string {
	return fmt.Sprintf("%s-%s-%04d", strings.ToUpper(strings.TrimSpace(prefix)), period, ordinal)
}
