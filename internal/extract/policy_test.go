package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTail_Extract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Level
	}{
		{
			name: "tier in tail wins over earlier tiers",
			text: "At first glance this is L3. Then L1 seemed plausible. Checking config. " +
				"Reviewing pricing. Looking at records. Considering impact. Weighing options. " +
				"Final answer is L2. Done.",
			want: L2,
		},
		{"fewer than seven statements", "Classified as Level 3", L3},
		{"l1 checked before l3", "This is L3 not L1.", L1},
		{"l2 checked before l3", "level 3 or maybe level 2", L2},
		{"case insensitive", "FINAL: LEVEL 1", L1},
		{"no tier", "No tier here.", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tail{}.Extract(tt.text))
		})
	}
}

func TestTail_IgnoresTierOutsideTail(t *testing.T) {
	text := "The answer is L3." + strings.Repeat(" More thinking.", 8)
	assert.Equal(t, Unknown, Tail{Statements: 7}.Extract(text))
	assert.Equal(t, L3, Tail{Statements: 20}.Extract(text))
}

func TestTail_CustomStatementCount(t *testing.T) {
	text := "L1 earlier. middle. end L2."
	assert.Equal(t, L2, Tail{Statements: 2}.Extract(text))
	assert.Equal(t, L1, Tail{Statements: 4}.Extract(text))
}

func TestPattern_Extract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Level
	}{
		{"level with space", "This is Level 3 because of a system crash.", L3},
		{"hyphenated", "Classification: L-1", L1},
		{"hyphen with spaces", "Tier: L - 2", L2},
		{"bare token", "L2 (Intermediate): configuration change", L2},
		{"level without space", "level2", L2},
		{"lower case", "classify as l3", L3},
		{"first occurrence wins", "L2 first, then L3", L2},
		{"no tier", "Nothing useful here", Unknown},
		{"digit out of range", "L4 is not a tier", Unknown},
		{"empty", "", Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Pattern{}.Extract(tt.text))
		})
	}
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("tail", 3)
	require.NoError(t, err)
	assert.Equal(t, Tail{Statements: 3}, p)
	assert.Equal(t, "tail", p.Name())

	p, err = PolicyByName("pattern", 0)
	require.NoError(t, err)
	assert.Equal(t, "pattern", p.Name())

	p, err = PolicyByName("", 0)
	require.NoError(t, err)
	assert.Equal(t, Pattern{}, p)

	_, err = PolicyByName("fuzzy", 0)
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
	assert.Contains(t, err.Error(), "fuzzy")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, L1, ParseLevel("L1"))
	assert.Equal(t, L3, ParseLevel("L3"))
	assert.Equal(t, Unknown, ParseLevel("l1"))
	assert.Equal(t, Unknown, ParseLevel("LEVEL3"))
	assert.Equal(t, Unknown, ParseLevel(""))
}
