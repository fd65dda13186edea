package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vectorlake/colvec/internal/pool"
)

func TestGetInt32SliceSizesAndReuses(t *testing.T) {
	s, release := pool.GetInt32Slice(4)
	assert.Len(t, s, 4)
	s[0], s[1], s[2], s[3] = 1, 2, 3, 4
	release()

	s2, release2 := pool.GetInt32Slice(2)
	assert.Len(t, s2, 2)
	release2()
}

func TestGetInt32SliceZeroSize(t *testing.T) {
	s, release := pool.GetInt32Slice(0)
	assert.Len(t, s, 0)
	release()
}
