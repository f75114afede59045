package model_test

import (
	"testing"

	"suitespot/internal/domains/settings/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSettings_Rates(t *testing.T) {
	tests := []struct {
		name        string
		tax         string
		service     string
		wantTax     string
		wantService string
	}{
		{name: "defaults", tax: "10", service: "5", wantTax: "0.1", wantService: "0.05"},
		{name: "fractional percent", tax: "7.125", service: "2.5", wantTax: "0.0713", wantService: "0.025"},
		{name: "zero", tax: "0", service: "0", wantTax: "0", wantService: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := model.Settings{
				TaxRate:           decimal.RequireFromString(tt.tax),
				ServiceChargeRate: decimal.RequireFromString(tt.service),
			}

			rates := settings.Rates()
			assert.True(t, rates.Tax.Equal(decimal.RequireFromString(tt.wantTax)), rates.Tax.String())
			assert.True(t, rates.Service.Equal(decimal.RequireFromString(tt.wantService)), rates.Service.String())
		})
	}
}
