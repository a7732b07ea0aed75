package cost

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthlyCost(t *testing.T) {
	tests := []struct {
		name     string
		input    Input
		expected Breakdown
	}{
		{
			name: "reference example",
			input: Input{
				Insurance:      100,
				Loan:           200,
				Parking:        50,
				Kms:            15000,
				LitersPer100Km: 8,
				PricePerLiter:  1.70,
				Maintenance:    60,
			},
			expected: Breakdown{Fixed: 350, Fuel: 2040, Maintenance: 60, Total: 2450},
		},
		{
			name:     "all zero",
			input:    Input{},
			expected: Breakdown{},
		},
		{
			name:     "fixed only",
			input:    Input{Insurance: 80.5, Loan: 310.25, Parking: 0},
			expected: Breakdown{Fixed: 390.75, Total: 390.75},
		},
		{
			name:     "fuel needs all three inputs",
			input:    Input{Kms: 1000, LitersPer100Km: 6},
			expected: Breakdown{},
		},
		{
			name:     "fuel rounded to cents",
			input:    Input{Kms: 1250, LitersPer100Km: 7.5, PricePerLiter: 1.7},
			expected: Breakdown{Fuel: 159.38, Total: 159.38},
		},
		{
			name:     "sub-cent parts are rounded before the total",
			input:    Input{Insurance: 0.005, Kms: 100, LitersPer100Km: 1, PricePerLiter: 0.005},
			expected: Breakdown{Fixed: 0.01, Fuel: 0.01, Total: 0.02},
		},
		{
			name:     "sub-cent maintenance",
			input:    Input{Loan: 10.004, Maintenance: 0.004},
			expected: Breakdown{Fixed: 10, Total: 10},
		},
		{
			name: "non-finite inputs become zero",
			input: Input{
				Insurance:      math.NaN(),
				Loan:           math.Inf(1),
				Parking:        math.Inf(-1),
				Kms:            math.NaN(),
				LitersPer100Km: 8,
				PricePerLiter:  1.7,
				Maintenance:    math.NaN(),
			},
			expected: Breakdown{},
		},
		{
			name:     "non-finite mixed with valid",
			input:    Input{Insurance: 100, Loan: math.NaN(), Maintenance: 25},
			expected: Breakdown{Fixed: 100, Maintenance: 25, Total: 125},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMonthlyCost(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeMonthlyCost_TotalIsSumOfParts(t *testing.T) {
	inputs := []Input{
		{Insurance: 0.005, Kms: 100, LitersPer100Km: 1, PricePerLiter: 0.005},
		{Insurance: 99.995, Loan: 0.015, Parking: 1.115, Kms: 333, LitersPer100Km: 5.3, PricePerLiter: 1.899, Maintenance: 12.505},
		{Kms: 1250, LitersPer100Km: 7.5, PricePerLiter: 1.7, Maintenance: 0.125},
		{Insurance: -10.555, Kms: 77.7, LitersPer100Km: 3.33, PricePerLiter: 2.015},
	}

	for _, in := range inputs {
		got := ComputeMonthlyCost(in)
		sum := decimal.NewFromFloat(got.Fixed).
			Add(decimal.NewFromFloat(got.Fuel)).
			Add(decimal.NewFromFloat(got.Maintenance))
		assert.True(t, sum.Equal(decimal.NewFromFloat(got.Total)),
			"total %v != %v + %v + %v", got.Total, got.Fixed, got.Fuel, got.Maintenance)
	}
}

func TestComputeMonthlyCost_Deterministic(t *testing.T) {
	in := Input{Insurance: 99.99, Loan: 0.01, Kms: 333, LitersPer100Km: 5.3, PricePerLiter: 1.899, Maintenance: 12.5}

	first := ComputeMonthlyCost(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputeMonthlyCost(in))
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
	}{
		{in: "", expected: 0},
		{in: "   ", expected: 0},
		{in: "abc", expected: 0},
		{in: "12abc", expected: 0},
		{in: "NaN", expected: 0},
		{in: "Inf", expected: 0},
		{in: "-Infinity", expected: 0},
		{in: "1e400", expected: 0},
		{in: "42", expected: 42},
		{in: " 1.70 ", expected: 1.7},
		{in: "1,70", expected: 1.7},
		{in: "-5", expected: -5},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAmount(tt.in))
		})
	}
}

func TestParseInput(t *testing.T) {
	in := ParseInput("100", "200", "50", "15000", "8", "1.70", "60")
	assert.Equal(t, Breakdown{Fixed: 350, Fuel: 2040, Maintenance: 60, Total: 2450}, ComputeMonthlyCost(in))

	in = ParseInput("x", "", "nope", "?", "", "-", "")
	assert.Equal(t, Breakdown{}, ComputeMonthlyCost(in))
}

func TestEstimateGarage(t *testing.T) {
	chart := EstimateGarage([]string{"Honda Civic", "Toyota Corolla 2018"}, DefaultAssumptions)

	require.Len(t, chart.Bars, 2)
	assert.Equal(t, "Honda Civic", chart.Bars[0].Label)
	assert.Equal(t, Breakdown{Fixed: 430, Fuel: 159.38, Maintenance: 50, Total: 639.38}, chart.Bars[0].Breakdown)
	assert.Equal(t, chart.Bars[0].Breakdown, chart.Bars[1].Breakdown)

	assert.Equal(t, Breakdown{Fixed: 860, Fuel: 318.76, Maintenance: 100, Total: 1278.76}, chart.Total)
}

func TestEstimateGarage_Empty(t *testing.T) {
	chart := EstimateGarage(nil, DefaultAssumptions)
	assert.NotNil(t, chart.Bars)
	assert.Empty(t, chart.Bars)
	assert.Equal(t, Breakdown{}, chart.Total)
}

func TestRenderBars(t *testing.T) {
	chart := Chart{
		Bars: []Bar{
			{Label: "Big", Breakdown: Breakdown{Total: 100}},
			{Label: "Small car", Breakdown: Breakdown{Total: 50}},
		},
		Total: Breakdown{Total: 150},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderBars(&buf, chart, 10))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Big       | "+strings.Repeat("█", 10)+" 100.00", lines[0])
	assert.Equal(t, "Small car | "+strings.Repeat("█", 5)+" 50.00", lines[1])
	assert.Contains(t, lines[2], "total 150.00")

	// Повторная отрисовка дает тот же результат
	var again bytes.Buffer
	require.NoError(t, RenderBars(&again, chart, 10))
	assert.Equal(t, buf.String(), again.String())
}

func TestRenderBars_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderBars(&buf, Chart{}, 0))
	assert.Equal(t, "No cars yet.\n", buf.String())
}
