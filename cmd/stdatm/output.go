package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/Lightslayer/AeroCalc-Package/internal/config"
)

const significantDigits = 6

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type field struct {
	Name  string
	Value float64
	Units string
}

type jsonField struct {
	Value decimal.Decimal `json:"value"`
	Units string          `json:"units,omitempty"`
}

type printer struct {
	w      io.Writer
	format string
}

// decimals returns the number of digits after the decimal point which keeps
// significantDigits significant digits of v
func decimals(v float64) int {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	d := significantDigits - 1 - int(math.Floor(math.Log10(math.Abs(v))))
	if d < 0 {
		return 0
	}
	return d
}

// CommafWithDigits truncates, so the value is rounded first
func formatText(v float64) string {
	return humanize.CommafWithDigits(formatJSON(v).InexactFloat64(), decimals(v))
}

func formatJSON(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(int32(decimals(v)))
}

func (p printer) print(fields ...field) error {
	if p.format == config.OutputJSON {
		out := make(map[string]jsonField, len(fields))
		for _, f := range fields {
			out[f.Name] = jsonField{Value: formatJSON(f.Value), Units: f.Units}
		}
		return json.NewEncoder(p.w).Encode(out)
	}
	for _, f := range fields {
		line := formatText(f.Value)
		if f.Units != "" {
			line += " " + f.Units
		}
		if len(fields) > 1 {
			line = f.Name + ": " + line
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}
