package converter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Starley-iggy/YahooBank/internal/model"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "alex", NormalizeUsername("  ALEX  "))
	assert.Equal(t, "jamie", NormalizeUsername("jamie"))
	assert.Equal(t, "", NormalizeUsername("   "))
}

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected float64
		wantErr  bool
	}{
		{name: "json number", value: json.Number("250.5"), expected: 250.5},
		{name: "float", value: 100.0, expected: 100.0},
		{name: "numeric string", value: "42", expected: 42},
		{name: "string with spaces", value: " 7.5 ", expected: 7.5},
		{name: "garbage string", value: "abc", wantErr: true},
		{name: "nil", value: nil, wantErr: true},
		{name: "bool", value: true, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			amount, err := ParseAmount(tc.value)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, amount, 1e-9)
		})
	}
}

func TestToScamResponse(t *testing.T) {
	// Ветка принца: отдается только princed
	prince := ToScamResponse(model.ScamResult{Message: "m", Balance: 12500, Princed: true})
	require.NotNil(t, prince.Princed)
	assert.True(t, *prince.Princed)
	assert.Nil(t, prince.Stolen)
	assert.Equal(t, "€12,500.00", prince.FormattedBalance)

	// Ветка потери: отдается только stolen
	loss := ToScamResponse(model.ScamResult{Message: "m", Balance: 1000, Stolen: 1500})
	require.NotNil(t, loss.Stolen)
	assert.InDelta(t, 1500, *loss.Stolen, 1e-9)
	assert.Nil(t, loss.Princed)
}
