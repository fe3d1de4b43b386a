package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.NoError(t, c.Validate())
	assert.Len(t, c.Groups, 6)
	assert.Equal(t, "Commodities", c.Groups[0].Name)
}

func TestGroup_Symbols(t *testing.T) {
	t.Parallel()

	g := Group{Name: "Forex", Instruments: []Instrument{
		{Name: "EUR/USD", Symbol: "EURUSD=X"},
		{Name: "USD/JPY", Symbol: "JPY=X"},
	}}
	assert.Equal(t, []string{"EURUSD=X", "JPY=X"}, g.Symbols())
}

func TestGroup_PricePrecision(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Group{}.PricePrecision())
	assert.Equal(t, 4, Group{Precision: 4}.PricePrecision())
}

func TestLoadFromFile_PreservesOrder(t *testing.T) {
	t.Parallel()

	yml := `groups:
  - name: Metals
    instruments:
      - name: Gold
        symbol: GC=F
      - name: Silver
        symbol: SI=F
  - name: Crypto
    precision: 4
    instruments:
      - name: Bitcoin
        symbol: BTC-USD
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)

	require.Len(t, c.Groups, 2)
	assert.Equal(t, "Metals", c.Groups[0].Name)
	assert.Equal(t, []string{"GC=F", "SI=F"}, c.Groups[0].Symbols())
	assert.Equal(t, 4, c.Groups[1].PricePrecision())
}

func TestLoadFromFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		catalog Catalog
		wantErr bool
	}{
		{name: "empty_catalog", catalog: Catalog{}, wantErr: true},
		{
			name:    "group_without_name",
			catalog: Catalog{Groups: []Group{{Instruments: []Instrument{{Name: "Gold", Symbol: "GC=F"}}}}},
			wantErr: true,
		},
		{
			name:    "empty_group",
			catalog: Catalog{Groups: []Group{{Name: "Metals"}}},
			wantErr: true,
		},
		{
			name:    "instrument_without_symbol",
			catalog: Catalog{Groups: []Group{{Name: "Metals", Instruments: []Instrument{{Name: "Gold"}}}}},
			wantErr: true,
		},
		{
			name:    "ok",
			catalog: Catalog{Groups: []Group{{Name: "Metals", Instruments: []Instrument{{Name: "Gold", Symbol: "GC=F"}}}}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.catalog.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
