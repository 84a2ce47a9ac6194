package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Тесты подменяют slog.Default(), поэтому без t.Parallel().

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func swapDefault(t *testing.T) *slog.Logger {
	t.Helper()

	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := discardLogger()
	slog.SetDefault(def)
	return def
}

func TestFrom_EmptyContext_FallsBackToDefault(t *testing.T) {
	def := swapDefault(t)

	require.Equal(t, def, From(context.Background()))
}

func TestIntoFrom_RoundTrip(t *testing.T) {
	def := swapDefault(t)

	l := discardLogger()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
	// Исходный контекст логгером не обзавёлся.
	require.Equal(t, def, From(context.Background()))
}

func TestFrom_GarbageUnderKey_FallsBackToDefault(t *testing.T) {
	def := swapDefault(t)

	ctx := context.WithValue(context.Background(), loggerKey{}, 42)
	require.Equal(t, def, From(ctx))

	var nilLogger *slog.Logger
	ctx = context.WithValue(context.Background(), loggerKey{}, nilLogger)
	require.Equal(t, def, From(ctx))
}

func TestInto_ChildOverridesParent(t *testing.T) {
	swapDefault(t)

	outer := discardLogger()
	inner := discardLogger()

	parent := Into(context.Background(), outer)
	child := Into(parent, inner)

	require.Equal(t, inner, From(child))
	require.Equal(t, outer, From(parent))
}

// Into — обычный context.WithValue: прочие значения, отмена и дедлайн
// родителя видны из потомка.
func TestInto_IsTransparentContextWrapper(t *testing.T) {
	swapDefault(t)

	type otherKey struct{}
	base := context.WithValue(context.Background(), otherKey{}, "kept")

	parent, cancel := context.WithDeadline(base, time.Now().Add(time.Minute))
	defer cancel()

	ctx := Into(parent, discardLogger())
	require.Equal(t, "kept", ctx.Value(otherKey{}))

	dl, ok := ctx.Deadline()
	require.True(t, ok)
	wantDL, _ := parent.Deadline()
	require.Equal(t, wantDL, dl)

	cancel()
	select {
	case <-ctx.Done():
		require.ErrorIs(t, ctx.Err(), context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("отмена родителя не дошла до потомка")
	}
}

// Логгер из контекста реально пишет привязанные атрибуты.
func TestFrom_LoggerWritesBoundAttrs(t *testing.T) {
	swapDefault(t)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "rid-7"))

	ctx := Into(context.Background(), l)
	From(ctx).Info("ping")

	require.Contains(t, buf.String(), "request_id=rid-7")
	require.Contains(t, buf.String(), "ping")
}
