package bureau

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditguard/internal/creditreport/models"
	"creditguard/internal/creditreport/payload"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		code string
		want models.Bureau
		ok   bool
	}{
		{"EFX", models.BureauEquifax, true},
		{"equifax", models.BureauEquifax, true},
		{"tu", models.BureauTransUnion, true},
		{" TransUnion ", models.BureauTransUnion, true},
		{"XPN", models.BureauExperian, true},
		{"exp", models.BureauExperian, true},
		{"bogus", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := Resolve(tt.code)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewAliasTable(t *testing.T) {
	t.Run("duplicate alias across bureaus", func(t *testing.T) {
		_, err := NewAliasTable([]Entry{
			{Bureau: models.BureauEquifax, Aliases: []string{"EFX"}},
			{Bureau: models.BureauExperian, Aliases: []string{"efx"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "claimed by")
	})

	t.Run("bureau listed twice", func(t *testing.T) {
		_, err := NewAliasTable([]Entry{
			{Bureau: models.BureauEquifax, Aliases: []string{"EFX"}},
			{Bureau: models.BureauEquifax, Aliases: []string{"EQ"}},
		})
		assert.Error(t, err)
	})

	t.Run("empty alias or bureau", func(t *testing.T) {
		_, err := NewAliasTable([]Entry{{Bureau: models.BureauEquifax, Aliases: []string{" "}}})
		assert.Error(t, err)
		_, err = NewAliasTable([]Entry{{Aliases: []string{"X"}}})
		assert.Error(t, err)
	})

	t.Run("default table is bidirectional", func(t *testing.T) {
		assert.Equal(t, models.Bureaus, Default.Bureaus())
		for _, b := range Default.Bureaus() {
			for _, alias := range Default.Aliases(b) {
				got, ok := Default.Resolve(alias)
				assert.True(t, ok)
				assert.Equal(t, b, got)
			}
		}
	})

	t.Run("must panics on invalid entries", func(t *testing.T) {
		assert.Panics(t, func() {
			MustAliasTable([]Entry{{Bureau: models.BureauEquifax, Aliases: []string{""}}})
		})
	})
}

func TestSelectProviderView(t *testing.T) {
	views := []payload.ProviderView{{Provider: "EFX"}, {Provider: "TU"}}

	t.Run("requested bureau present", func(t *testing.T) {
		view, sel, ok := SelectProviderView(views, models.BureauTransUnion)
		require.True(t, ok)
		assert.Equal(t, "TU", view.Provider)
		assert.False(t, sel.Fallback)
		assert.Equal(t, models.BureauTransUnion, sel.Served)
	})

	t.Run("absent bureau falls back to first view", func(t *testing.T) {
		view, sel, ok := SelectProviderView(views, models.BureauExperian)
		require.True(t, ok)
		assert.Equal(t, "EFX", view.Provider)
		assert.True(t, sel.Fallback)
		assert.Equal(t, models.BureauExperian, sel.Requested)
		assert.Equal(t, models.BureauEquifax, sel.Served)
	})

	t.Run("no requested bureau takes first view", func(t *testing.T) {
		view, sel, ok := SelectProviderView(views, "")
		require.True(t, ok)
		assert.Equal(t, "EFX", view.Provider)
		assert.False(t, sel.Fallback)
	})

	t.Run("no views", func(t *testing.T) {
		_, sel, ok := SelectProviderView(nil, models.BureauEquifax)
		assert.False(t, ok)
		assert.Equal(t, models.BureauEquifax, sel.Requested)
	})
}

func TestAvailable(t *testing.T) {
	views := []payload.ProviderView{{Provider: "XPN"}, {Provider: "???"}, {Provider: "efx"}, {Provider: "EXPERIAN"}}
	assert.Equal(t, []models.Bureau{models.BureauExperian, models.BureauEquifax}, Available(views))
	assert.Empty(t, Available(nil))
}
