package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c, err := New("skills", 0.6, []Entry{
		{Canonical: "Painter", Aliases: []string{"paint", "पेंटर", "  PAINT  "}},
		{Canonical: "Auto Driver", Aliases: []string{"auto   rickshaw driver"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "skills", c.Name())
	assert.Equal(t, 0.6, c.Threshold())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Auto Driver", "Painter"}, c.Canonicals())
	// painter, paint, पेंटर, auto driver, auto rickshaw driver
	assert.Equal(t, 5, c.AliasCount())
	assert.Equal(t, 3, c.MaxAliasTokens())
}

func TestLookup_CaseAndWhitespaceInsensitive(t *testing.T) {
	c := MustNew("skills", 0.6, []Entry{
		{Canonical: "Security Guard", Aliases: []string{"guard"}},
	})

	for _, phrase := range []string{"security guard", "SECURITY   GUARD", " Security\tGuard ", "guard", "Guard!"} {
		canonical, ok := c.Lookup(phrase)
		assert.True(t, ok, phrase)
		assert.Equal(t, "Security Guard", canonical)
	}

	_, ok := c.Lookup("security")
	assert.False(t, ok)

	canonical, ok := c.LookupTokens([]string{"security", "guard"})
	assert.True(t, ok)
	assert.Equal(t, "Security Guard", canonical)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name      string
		catalog   string
		threshold float64
		entries   []Entry
		contains  string
	}{
		{
			name:      "alias conflict",
			catalog:   "skills",
			threshold: 0.6,
			entries: []Entry{
				{Canonical: "Mason", Aliases: []string{"mistri"}},
				{Canonical: "Mechanic", Aliases: []string{"Mistri"}},
			},
			contains: "maps to both",
		},
		{
			name:      "canonical used as alias elsewhere",
			catalog:   "skills",
			threshold: 0.6,
			entries: []Entry{
				{Canonical: "Driver"},
				{Canonical: "Chauffeur", Aliases: []string{"driver"}},
			},
			contains: "maps to both",
		},
		{
			name:      "duplicate canonical",
			catalog:   "skills",
			threshold: 0.6,
			entries:   []Entry{{Canonical: "Cook"}, {Canonical: "Cook"}},
			contains:  "duplicate",
		},
		{
			name:      "empty canonical",
			catalog:   "skills",
			threshold: 0.6,
			entries:   []Entry{{Canonical: "  "}},
			contains:  "empty canonical",
		},
		{
			name:      "threshold out of range",
			catalog:   "skills",
			threshold: 1.2,
			entries:   []Entry{{Canonical: "Cook"}},
			contains:  "threshold",
		},
		{
			name:      "no name",
			threshold: 0.6,
			entries:   []Entry{{Canonical: "Cook"}},
			contains:  "name is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.catalog, tt.threshold, tt.entries)
			require.Error(t, err)

			var buildErr *BuildError
			require.ErrorAs(t, err, &buildErr)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestNew_SameAliasTwiceForOneCanonical(t *testing.T) {
	c, err := New("genders", 1, []Entry{
		{Canonical: "Male", Aliases: []string{"man", "MAN", "male"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, c.AliasCount())
}

func TestAliasesOf(t *testing.T) {
	c := MustNew("genders", 1, []Entry{
		{Canonical: "Male", Aliases: []string{"man", "boy"}},
		{Canonical: "Female", Aliases: []string{"woman"}},
	})
	assert.Equal(t, []string{"boy", "male", "man"}, c.AliasesOf("Male"))
	assert.Empty(t, c.AliasesOf("Other"))
}

func TestMustNew_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNew("", 0.5, nil)
	})
}
