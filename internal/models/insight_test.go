package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryThresholdTableCeiling(t *testing.T) {
	table := CategoryThresholdTable{
		"Housing": 35,
		"Food":    25,
	}

	assert.Equal(t, 35, table.Ceiling("Housing"))
	assert.Equal(t, 25, table.Ceiling("Food"))
	assert.Equal(t, DefaultCategoryCeiling, table.Ceiling("Gadgets"))

	var empty CategoryThresholdTable
	assert.Equal(t, DefaultCategoryCeiling, empty.Ceiling("Housing"))
}
