package normalize

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namespaces for placeholder ids of records the bureau did not identify.
var (
	accountNamespace      = uuid.MustParse("6f1c9e04-3b1a-4f0e-9a55-1d2f6c0b8a01")
	publicRecordNamespace = uuid.MustParse("6f1c9e04-3b1a-4f0e-9a55-1d2f6c0b8a02")
	collectionNamespace   = uuid.MustParse("6f1c9e04-3b1a-4f0e-9a55-1d2f6c0b8a03")
)

// placeholderID derives a stable id from the record's own fields, so the same
// record gets the same id on every normalization.
func placeholderID(ns uuid.UUID, parts ...any) string {
	fields := make([]string, len(parts))
	for i, p := range parts {
		fields[i] = fmt.Sprint(p)
	}
	return uuid.NewSHA1(ns, []byte(strings.Join(fields, "|"))).String()
}
