package models

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestInvestment_AmountColumnHasNoFixedScale(t *testing.T) {
	sch, err := schema.Parse(&Investment{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := sch.LookUpField("amount")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("numeric"), field.DataType)
	assert.Zero(t, field.Scale)
}

func TestInvestment_Validate(t *testing.T) {
	tests := []struct {
		name string
		inv  Investment
		want error
	}{
		{name: "valid", inv: Investment{Amount: decimal.RequireFromString("10.125"), SerialDate: 1}},
		{name: "zero amount", inv: Investment{Amount: decimal.Zero}},
		{name: "negative amount", inv: Investment{Amount: decimal.NewFromInt(-1)}, want: ErrNegativeAmount},
		{name: "negative serial", inv: Investment{SerialDate: -1}, want: ErrInvalidSerialDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.inv.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
