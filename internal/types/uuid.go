package types

import (
	"fmt"

	"github.com/oklog/ulid/v2"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex ord_0ujsswThIGTUYm2K8FjOOfXtY1K
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

// Prefixes for all domain entity IDs
const (
	UUIDPrefixProduct        = "prod"
	UUIDPrefixCustomer       = "cust"
	UUIDPrefixOrder          = "ord"
	UUIDPrefixOrderLine      = "line"
	UUIDPrefixProject        = "proj"
	UUIDPrefixTask           = "task"
	UUIDPrefixTimesheetEntry = "ts"
	UUIDPrefixCompany        = "comp"
	UUIDPrefixUnitOfMeasure  = "uom"
)
