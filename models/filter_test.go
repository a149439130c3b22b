package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccountFilter_String(t *testing.T) {
	assert.Equal(t, "All", AccountFilter{}.String())
	assert.Equal(t, "Favorites", AccountFilter{Kind: FilterFavorites}.String())
	assert.Equal(t, "Category: Work", AccountFilter{Kind: FilterCategory, Category: "Work"}.String())
}
