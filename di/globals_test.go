package di_test

import (
	"context"
	"testing"

	"github.com/sghaida/scopedi/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The package-level API shares one process-wide injector, so these tests do
// not run in parallel; each one purges the shared state when it finishes.

// TestGlobals_ProvideInject verifies the zero-setup surface end to end.
func TestGlobals_ProvideInject(t *testing.T) {
	t.Cleanup(func() { di.Purge() })

	ctx := context.Background()

	di.Provide(ctx, "config", map[string]string{"api_key": "abc123"})

	got, err := di.Inject(ctx, "config")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.(map[string]string)["api_key"])

	v, ok := di.TryInject(ctx, "config")
	require.True(t, ok)
	assert.Equal(t, got, v)

	assert.Equal(t, got, di.MustInject(ctx, "config"))

	typed, err := di.InjectAs[map[string]string](ctx, di.Default(), "config")
	require.NoError(t, err)
	assert.Equal(t, "abc123", typed["api_key"])
}

// TestGlobals_ScopeAndScoped verifies the package-level scope entry points
// drive the same default injector.
func TestGlobals_ScopeAndScoped(t *testing.T) {
	t.Cleanup(func() { di.Purge() })

	ctx := context.Background()
	di.Provide(ctx, "env", "production")

	scopedCtx, scope := di.EnterScope(ctx, di.WithLabel("test"))
	di.Provide(scopedCtx, "env", "test")
	assert.Equal(t, "test", di.MustInject(scopedCtx, "env"))
	scope.Release()

	assert.Equal(t, "production", di.MustInject(ctx, "env"))

	ran := false
	fn := di.Scoped(func(ctx context.Context) error {
		di.Provide(ctx, "env", "scoped")
		ran = true
		return nil
	})
	require.NoError(t, fn(ctx))
	require.True(t, ran)
	assert.Equal(t, "production", di.MustInject(ctx, "env"))
}

// TestGlobals_UpdateAndPurge verifies the remaining wrappers.
func TestGlobals_UpdateAndPurge(t *testing.T) {
	t.Cleanup(func() { di.Purge() })

	ctx := context.Background()
	di.Provide(ctx, "counter", 0, di.In("metrics"))

	require.NoError(t, di.Update(ctx, "counter", func(v any) any { return v.(int) + 1 }, di.In("metrics")))
	assert.Equal(t, 1, di.MustInject(ctx, "counter", di.In("metrics")))

	di.Purge("metrics")
	_, err := di.Inject(ctx, "counter", di.In("metrics"))
	require.Error(t, err)
}

// TestGlobals_AutoInjectAndFill verifies the reflection wrappers on the
// default injector.
func TestGlobals_AutoInjectAndFill(t *testing.T) {
	t.Cleanup(func() { di.Purge() })

	ctx := context.Background()
	di.Provide(ctx, "greeting", "hello")

	wrapped, err := di.AutoInject(func(g string) string { return g + " world" }, di.Use("greeting"))
	require.NoError(t, err)

	out, err := wrapped(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello world", out[0])

	type target struct {
		Greeting string `inject:"greeting"`
	}
	tgt := &target{}
	require.NoError(t, di.Fill(ctx, tgt))
	assert.Equal(t, "hello", tgt.Greeting)
}
