package sheet

import (
	"testing"
)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col      int
		expected string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}

	for _, test := range tests {
		if name := columnName(test.col); name != test.expected {
			t.Errorf("Incorrect column name for %d - expected:%s, got:%s", test.col, test.expected, name)
		}
	}
}
