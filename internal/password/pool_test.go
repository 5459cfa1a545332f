package password

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_HashVerify(t *testing.T) {
	t.Parallel()
	p := NewPool(NewArgon2(testParams), 2)
	ctx := context.Background()

	hash, err := p.Hash(ctx, "Passw0rd")
	require.NoError(t, err)

	ok, err := p.Verify(ctx, "Passw0rd", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Verify(ctx, "Passw0rd!", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.False(t, p.NeedsRehash(hash))
}

func TestPool_CancelledContext(t *testing.T) {
	t.Parallel()
	p := NewPool(NewArgon2(testParams), 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Hash(ctx, "Passw0rd")
	require.ErrorIs(t, err, context.Canceled)

	_, err = p.Verify(ctx, "Passw0rd", "$argon2id$")
	require.ErrorIs(t, err, context.Canceled)
}

func TestPool_Concurrent(t *testing.T) {
	t.Parallel()
	p := NewPool(NewArgon2(testParams), 0)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hash, err := p.Hash(ctx, "Passw0rd")
			if err != nil {
				errs <- err
				return
			}
			if ok, err := p.Verify(ctx, "Passw0rd", hash); err != nil || !ok {
				errs <- assert.AnError
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Fatal(err)
	}
}
