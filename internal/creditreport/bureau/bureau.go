// Package bureau resolves provider codes to canonical bureaus and selects the
// provider view that feeds normalization.
package bureau

import (
	"fmt"
	"strings"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

// Entry lists the provider-code aliases of one bureau.
type Entry struct {
	Bureau  models.Bureau
	Aliases []string
}

// AliasTable is a bidirectional map between canonical bureaus and their
// provider-code aliases. It is immutable after construction.
type AliasTable struct {
	byAlias map[string]models.Bureau
	aliases map[models.Bureau][]string
	order   []models.Bureau
}

// NewAliasTable validates entries and builds the table. It rejects empty
// bureaus, empty aliases, a bureau listed twice, and an alias claimed twice
// (compared case-insensitively).
func NewAliasTable(entries []Entry) (*AliasTable, error) {
	t := &AliasTable{
		byAlias: make(map[string]models.Bureau),
		aliases: make(map[models.Bureau][]string, len(entries)),
		order:   make([]models.Bureau, 0, len(entries)),
	}
	for _, e := range entries {
		if e.Bureau.IsZero() {
			return nil, fmt.Errorf("bureau alias table: entry without bureau")
		}
		if _, dup := t.aliases[e.Bureau]; dup {
			return nil, fmt.Errorf("bureau alias table: %s listed twice", e.Bureau)
		}
		keys := make([]string, 0, len(e.Aliases))
		for _, alias := range e.Aliases {
			key := aliasKey(alias)
			if key == "" {
				return nil, fmt.Errorf("bureau alias table: empty alias for %s", e.Bureau)
			}
			if owner, dup := t.byAlias[key]; dup {
				return nil, fmt.Errorf("bureau alias table: alias %q claimed by %s and %s", alias, owner, e.Bureau)
			}
			t.byAlias[key] = e.Bureau
			keys = append(keys, key)
		}
		t.aliases[e.Bureau] = keys
		t.order = append(t.order, e.Bureau)
	}
	return t, nil
}

// MustAliasTable is NewAliasTable that panics on invalid entries. Use only for
// tables fixed at compile time.
func MustAliasTable(entries []Entry) *AliasTable {
	t, err := NewAliasTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

func aliasKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve maps a provider code to its bureau with a case-insensitive exact match.
func (t *AliasTable) Resolve(code string) (models.Bureau, bool) {
	b, ok := t.byAlias[aliasKey(code)]
	return b, ok
}

// Aliases returns the recognized codes of b, upper-cased, in declaration order.
func (t *AliasTable) Aliases(b models.Bureau) []string {
	return append([]string(nil), t.aliases[b]...)
}

// Bureaus returns the bureaus in declaration order.
func (t *AliasTable) Bureaus() []models.Bureau {
	return append([]models.Bureau(nil), t.order...)
}

// Default is the provider-code table used by the package-level helpers.
var Default = MustAliasTable([]Entry{
	{Bureau: models.BureauEquifax, Aliases: []string{"EFX", "EQUIFAX", "EQ"}},
	{Bureau: models.BureauTransUnion, Aliases: []string{"TU", "TUC", "TRU", "TRANSUNION"}},
	{Bureau: models.BureauExperian, Aliases: []string{"EXP", "XPN", "EX", "EXPERIAN"}},
})

// Resolve resolves code against Default.
func Resolve(code string) (models.Bureau, bool) {
	return Default.Resolve(code)
}

// Selection describes which view SelectProviderView served.
type Selection struct {
	Requested models.Bureau `json:"requested,omitempty"`
	Served    models.Bureau `json:"served,omitempty"`
	Provider  string        `json:"provider,omitempty"`
	// Fallback is true when the requested bureau was absent and the first view
	// was served in its place. Callers that need strict bureau isolation must
	// reject such results.
	Fallback bool `json:"fallback"`
}

// SelectProviderView returns the view for requested. When requested is absent
// from views, the first view is returned with Selection.Fallback set. A zero
// requested bureau selects the first view without marking a fallback. ok is
// false only when views is empty.
func SelectProviderView(views []payload.ProviderView, requested models.Bureau) (payload.ProviderView, Selection, bool) {
	if len(views) == 0 {
		return payload.ProviderView{}, Selection{Requested: requested}, false
	}
	if !requested.IsZero() {
		for _, v := range views {
			if b, ok := Resolve(v.Provider); ok && b == requested {
				return v, Selection{Requested: requested, Served: b, Provider: v.Provider}, true
			}
		}
	}
	first := views[0]
	served, _ := Resolve(first.Provider)
	return first, Selection{
		Requested: requested,
		Served:    served,
		Provider:  first.Provider,
		Fallback:  !requested.IsZero(),
	}, true
}

// Available lists the bureaus present in views, in view order, without
// duplicates. Views with unrecognized provider codes are skipped.
func Available(views []payload.ProviderView) []models.Bureau {
	seen := make(map[models.Bureau]struct{}, len(views))
	out := make([]models.Bureau, 0, len(views))
	for _, v := range views {
		b, ok := Resolve(v.Provider)
		if !ok {
			continue
		}
		if _, dup := seen[b]; dup {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	return out
}
