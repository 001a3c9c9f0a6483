package memory_test

import (
	"testing"

	"github.com/plin1112/mcell/pkg/adapters/memory"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_Limit(t *testing.T) {
	pool := memory.NewPool[domain.Molecule]("mol", 2)

	a, err := pool.Acquire()
	require.NoError(t, err)
	_, err = pool.Acquire()
	require.NoError(t, err)

	_, err = pool.Acquire()
	assert.ErrorIs(t, err, domain.ErrAllocation)
	assert.Equal(t, 2, pool.Live())

	pool.Release(a)
	assert.Equal(t, 1, pool.Live())

	_, err = pool.Acquire()
	assert.NoError(t, err)
}

func TestPool_ReuseIsZeroed(t *testing.T) {
	pool := memory.NewPool[domain.Molecule]("mol", 0)

	m, err := pool.Acquire()
	require.NoError(t, err)
	m.ID = 42
	m.Pos = domain.Vector3{X: 1}
	pool.Release(m)

	again, err := pool.Acquire()
	require.NoError(t, err)
	assert.Same(t, m, again, "released storage should be recycled")
	assert.Zero(t, again.ID)
	assert.Zero(t, again.Pos)
}
