package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFactory struct {
	name  string
	built int
}

func (f *stubFactory) Name() string { return f.name }

func (f *stubFactory) New(ctx context.Context) (any, error) {
	f.built++
	return f.built, nil
}

func (f *stubFactory) Refresh(ctx context.Context, handle any) (any, error) {
	f.built++
	return f.built, nil
}

func TestTableResolver(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves registered names", func(t *testing.T) {
		table := NewTableResolver(&stubFactory{name: "perception"})
		h, err := table.Resolve(ctx, "perception")
		require.NoError(t, err)
		assert.Equal(t, 1, h)
	})

	t.Run("unknown names fail to resolve", func(t *testing.T) {
		table := NewTableResolver(&stubFactory{name: "perception"})
		_, err := table.Resolve(ctx, "telepathy")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no factory registered")
	})

	t.Run("refresh delegates to the factory", func(t *testing.T) {
		f := &stubFactory{name: "memory"}
		table := NewTableResolver(f)
		h, err := table.Resolve(ctx, "memory")
		require.NoError(t, err)
		fresh, err := table.Refresh(ctx, "memory", h)
		require.NoError(t, err)
		assert.NotEqual(t, h, fresh)
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		assert.Panics(t, func() {
			NewTableResolver(&stubFactory{name: "memory"}, &stubFactory{name: "memory"})
		})
	})
}
