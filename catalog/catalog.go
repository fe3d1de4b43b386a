// Package catalog defines the static instrument catalog: ordered groups
// of display-name/symbol pairs that drive table layout and row order.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Instrument struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
}

type Group struct {
	Name        string       `yaml:"name"`
	Instruments []Instrument `yaml:"instruments"`

	// Decimal places for rendered prices. Zero means the default of 2;
	// crypto uses 4.
	Precision int `yaml:"precision,omitempty"`
}

// Symbols returns the group's symbols in row order.
func (g Group) Symbols() []string {
	syms := make([]string, len(g.Instruments))
	for i, inst := range g.Instruments {
		syms[i] = inst.Symbol
	}
	return syms
}

func (g Group) PricePrecision() int {
	if g.Precision <= 0 {
		return 2
	}
	return g.Precision
}

type Catalog struct {
	Groups []Group `yaml:"groups"`
}

// LoadFromFile reads a catalog override from a YAML file.
func LoadFromFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate rejects catalogs the engine would loop degenerately on.
func (c Catalog) Validate() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("catalog has no groups")
	}
	for _, g := range c.Groups {
		if g.Name == "" {
			return fmt.Errorf("catalog group without a name")
		}
		if len(g.Instruments) == 0 {
			return fmt.Errorf("group %q has no instruments", g.Name)
		}
		for _, inst := range g.Instruments {
			if inst.Name == "" || inst.Symbol == "" {
				return fmt.Errorf("group %q has an instrument with empty name or symbol", g.Name)
			}
		}
	}
	return nil
}

// Default returns the built-in dashboard catalog: commodities, spot and
// futures indices, forex, US treasury yields, and crypto.
func Default() Catalog {
	return Catalog{Groups: []Group{
		{
			Name: "Commodities",
			Instruments: []Instrument{
				{Name: "Gold", Symbol: "GC=F"},
				{Name: "Crude Oil", Symbol: "CL=F"},
				{Name: "Natural Gas", Symbol: "NG=F"},
				{Name: "Silver", Symbol: "SI=F"},
				{Name: "Copper", Symbol: "HG=F"},
				{Name: "Platinum", Symbol: "PL=F"},
				{Name: "Corn", Symbol: "ZC=F"},
				{Name: "Soybeans", Symbol: "ZS=F"},
				{Name: "Wheat", Symbol: "ZW=F"},
			},
		},
		{
			Name: "Indices (Spot)",
			Instruments: []Instrument{
				{Name: "Nasdaq", Symbol: "^IXIC"},
				{Name: "Dow Jones", Symbol: "^DJI"},
				{Name: "S&P 500", Symbol: "^GSPC"},
				{Name: "Nikkei 225", Symbol: "^N225"},
				{Name: "FTSE 100", Symbol: "^FTSE"},
				{Name: "DAX", Symbol: "^GDAXI"},
				{Name: "Shanghai Composite", Symbol: "000001.SS"},
				{Name: "KOSPI", Symbol: "^KS11"},
				{Name: "KOSDAQ", Symbol: "^KQ11"},
			},
		},
		{
			Name: "Indices (Futures)",
			Instruments: []Instrument{
				{Name: "Nasdaq", Symbol: "NQ=F"},
				{Name: "Dow Jones", Symbol: "YM=F"},
				{Name: "S&P 500", Symbol: "ES=F"},
			},
		},
		{
			Name: "Forex",
			Instruments: []Instrument{
				{Name: "EUR/USD", Symbol: "EURUSD=X"},
				{Name: "USD/JPY", Symbol: "JPY=X"},
				{Name: "GBP/USD", Symbol: "GBPUSD=X"},
				{Name: "USD/CNY", Symbol: "CNY=X"},
				{Name: "USD/KRW", Symbol: "KRW=X"},
			},
		},
		{
			Name: "US Treasuries",
			Instruments: []Instrument{
				{Name: "Short-Term Yield", Symbol: "^IRX"},
				{Name: "5-Year Yield", Symbol: "^FVX"},
				{Name: "10-Year Yield", Symbol: "^TNX"},
				{Name: "30-Year Yield", Symbol: "^TYX"},
			},
		},
		{
			Name:      "Crypto",
			Precision: 4,
			Instruments: []Instrument{
				{Name: "Bitcoin", Symbol: "BTC-USD"},
				{Name: "Ethereum", Symbol: "ETH-USD"},
				{Name: "XRP", Symbol: "XRP-USD"},
				{Name: "Solana", Symbol: "SOL-USD"},
				{Name: "BNB", Symbol: "BNB-USD"},
				{Name: "Dogecoin", Symbol: "DOGE-USD"},
				{Name: "Cardano", Symbol: "ADA-USD"},
				{Name: "TRON", Symbol: "TRX-USD"},
				{Name: "Avalanche", Symbol: "AVAX-USD"},
			},
		},
	}}
}
