package depnodes_test

import (
	"context"
	"testing"
	"time"

	"github.com/delaneyj/depnodes/depnodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWaitsForPublish(t *testing.T) {
	set := depnodes.New()
	defer set.Close()
	root, err := set.Add("c", chain(2))
	require.NoError(t, err)

	done := make(chan depnodes.Event)
	go func() {
		e, err := set.Updates().Next(context.Background())
		if err == nil {
			done <- e
		}
		close(done)
	}()

	require.NoError(t, set.Set(root+1, 41))
	select {
	case e := <-done:
		assert.Equal(t, depnodes.Event{Index: root, Old: 1, New: 42}, e)
	case <-time.After(5 * time.Second):
		t.Fatal("no event")
	}
}

func TestNextHonoursContext(t *testing.T) {
	set := depnodes.New()
	defer set.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := set.Updates().Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCloseDrainsThenFails(t *testing.T) {
	set := depnodes.New()
	root, err := set.Add("c", chain(3))
	require.NoError(t, err)
	require.NoError(t, set.Set(root+2, 1))

	updates := set.Updates()
	updates.Close()
	updates.Close()
	assert.Equal(t, 2, updates.Len())

	ctx := context.Background()
	e, err := updates.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, root+1, e.Index)
	e, ok := updates.TryNext()
	require.True(t, ok)
	assert.Equal(t, root, e.Index)

	_, err = updates.Next(ctx)
	assert.ErrorIs(t, err, depnodes.ErrClosed)

	// the set keeps working, events are just dropped
	require.NoError(t, set.Set(root+2, 2))
	assert.Equal(t, 0, updates.Len())
	v, _ := set.Value(root)
	assert.Equal(t, 4, v)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "#3: 1 -> 2", depnodes.Event{Index: 3, Old: 1, New: 2}.String())
}
