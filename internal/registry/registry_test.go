package registry

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeResolver is a scriptable Resolver for exercising the registry's state
// machine without real modules.
type fakeResolver struct {
	resolveErr map[string]error
	emptyNames map[string]bool
	refreshErr map[string]error
	resolved   []string
	refreshed  []string
	generation int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		resolveErr: make(map[string]error),
		emptyNames: make(map[string]bool),
		refreshErr: make(map[string]error),
	}
}

func (f *fakeResolver) Resolve(ctx context.Context, name string) (any, error) {
	f.resolved = append(f.resolved, name)
	if err, ok := f.resolveErr[name]; ok {
		return nil, err
	}
	if f.emptyNames[name] {
		return nil, nil
	}
	f.generation++
	return fmt.Sprintf("%s#%d", name, f.generation), nil
}

func (f *fakeResolver) Refresh(ctx context.Context, name string, handle any) (any, error) {
	f.refreshed = append(f.refreshed, name)
	if err, ok := f.refreshErr[name]; ok {
		return nil, err
	}
	f.generation++
	return fmt.Sprintf("%s#%d", name, f.generation), nil
}

func TestNew(t *testing.T) {
	t.Run("defaults to the built-in module names", func(t *testing.T) {
		r := New(newFakeResolver())
		assert.Equal(t, DefaultModuleNames, r.Names())
		assert.Empty(t, r.Modules())
	})

	t.Run("fixes the configured order at construction", func(t *testing.T) {
		names := []string{"b", "a"}
		r := New(newFakeResolver(), names...)
		names[0] = "mutated"
		assert.Equal(t, []string{"b", "a"}, r.Names())
	})
}

func TestLoadAll_Success(t *testing.T) {
	resolver := newFakeResolver()
	r := New(resolver, "perception", "reasoning", "memory")

	modules, err := r.LoadAll(context.Background())
	require.NoError(t, err)

	assert.Len(t, modules, 3)
	assert.Contains(t, modules, "perception")
	assert.Contains(t, modules, "reasoning")
	assert.Contains(t, modules, "memory")

	// Load order follows the configured sequence.
	assert.Equal(t, []string{"perception", "reasoning", "memory"}, resolver.resolved)

	// The returned mapping is a snapshot, not the live internal map.
	modules["perception"] = "tampered"
	h, ok := r.Handle("perception")
	require.True(t, ok)
	assert.NotEqual(t, "tampered", h)
}

func TestLoadAll_ResolveFailure(t *testing.T) {
	resolver := newFakeResolver()
	cause := errors.New("symbol table corrupt")
	resolver.resolveErr["reasoning"] = cause
	r := New(resolver, "perception", "reasoning", "memory")

	modules, err := r.LoadAll(context.Background())
	require.Error(t, err)
	assert.Nil(t, modules)

	// The caller sees exactly one aggregate kind.
	var batchErr *BatchLoadError
	require.ErrorAs(t, err, &batchErr)

	// The per-name kind and the root cause are both reachable.
	var importErr *ImportError
	require.ErrorAs(t, err, &importErr)
	assert.Equal(t, "reasoning", importErr.Name)
	assert.ErrorIs(t, err, cause)

	// The prefix loaded before the failure is retained; nothing after it ran.
	_, ok := r.Handle("perception")
	assert.True(t, ok)
	_, ok = r.Handle("reasoning")
	assert.False(t, ok)
	_, ok = r.Handle("memory")
	assert.False(t, ok)
	assert.Equal(t, []string{"perception", "reasoning"}, resolver.resolved)
}

func TestLoadAll_EmptyHandle(t *testing.T) {
	resolver := newFakeResolver()
	resolver.emptyNames["memory"] = true
	r := New(resolver, "perception", "memory")

	_, err := r.LoadAll(context.Background())
	require.Error(t, err)

	var batchErr *BatchLoadError
	require.ErrorAs(t, err, &batchErr)
	var unavailErr *UnavailableError
	require.ErrorAs(t, err, &unavailErr)
	assert.Equal(t, "memory", unavailErr.Name)

	_, ok := r.Handle("perception")
	assert.True(t, ok)
	_, ok = r.Handle("memory")
	assert.False(t, ok)
}

func TestReload(t *testing.T) {
	t.Run("replaces the handle in place", func(t *testing.T) {
		resolver := newFakeResolver()
		r := New(resolver, "perception")
		_, err := r.LoadAll(context.Background())
		require.NoError(t, err)

		before, ok := r.Handle("perception")
		require.True(t, ok)

		err = r.Reload(context.Background(), "perception")
		require.NoError(t, err)

		after, ok := r.Handle("perception")
		require.True(t, ok)
		assert.NotEqual(t, before, after)
		assert.Equal(t, []string{"perception"}, resolver.refreshed)
	})

	t.Run("fails with ErrNotLoaded for unknown names", func(t *testing.T) {
		resolver := newFakeResolver()
		r := New(resolver, "perception")
		_, err := r.LoadAll(context.Background())
		require.NoError(t, err)

		err = r.Reload(context.Background(), "telepathy")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotLoaded)

		// No refresh was attempted and state is unchanged.
		assert.Empty(t, resolver.refreshed)
		assert.Len(t, r.Modules(), 1)
	})

	t.Run("a failed refresh keeps the old handle but reports the error", func(t *testing.T) {
		resolver := newFakeResolver()
		r := New(resolver, "memory")
		_, err := r.LoadAll(context.Background())
		require.NoError(t, err)

		before, _ := r.Handle("memory")

		cause := errors.New("unit vanished")
		resolver.refreshErr["memory"] = cause

		err = r.Reload(context.Background(), "memory")
		require.Error(t, err)

		var reloadErr *ReloadError
		require.ErrorAs(t, err, &reloadErr)
		assert.Equal(t, "memory", reloadErr.Name)
		assert.ErrorIs(t, err, cause)

		// Entry presence is unchanged.
		after, ok := r.Handle("memory")
		require.True(t, ok)
		assert.Equal(t, before, after)
	})
}
