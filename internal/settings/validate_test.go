package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateStockCode(t *testing.T) {
	testCases := []struct {
		code  string
		valid bool
	}{
		{"600519", true},
		{"000858", true},
		{"hk00700", true},
		{"HK00700", true},
		{"aapl", true},
		{"AAPL", true},
		{"  600519  ", true},
		{"", false},
		{"60051", false},
		{"6005199", false},
		{"hk007", false},
		{"toolong", false},
		{"60051a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidateStockCode(tc.code))
		})
	}
}

func TestNormalizeStockList(t *testing.T) {
	valid, invalid := NormalizeStockList("600519, HK00700\nAAPL,,\n")
	assert.Equal(t, []string{"600519", "hk00700", "aapl"}, valid)
	assert.Empty(t, invalid)

	valid, invalid = NormalizeStockList("600519,bogus!,60051")
	assert.Equal(t, []string{"600519"}, valid)
	assert.Equal(t, []string{"bogus!", "60051"}, invalid)
}

func TestValidateScheduleTimes(t *testing.T) {
	assert.True(t, ValidateScheduleTimes("09:00"))
	assert.True(t, ValidateScheduleTimes("9:00, 15:30"))
	assert.False(t, ValidateScheduleTimes(""))
	assert.False(t, ValidateScheduleTimes("nine"))
	assert.False(t, ValidateScheduleTimes("09:00,late"))
}

func TestInvalidStockCodesError(t *testing.T) {
	err := &InvalidStockCodesError{Codes: []string{"bogus", "60051"}}
	assert.Equal(t, "invalid stock codes: bogus, 60051", err.Error())
}
