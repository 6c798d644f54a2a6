package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTableID(t *testing.T) {
	a, b := GenerateTableID(), GenerateTableID()
	assert.NotEqual(t, a, b)
	assert.True(t, IsTableID(a))
	assert.False(t, IsTableID("not-a-table"))
	assert.False(t, IsTableID(""))
}
