package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendContract(t *testing.T) {
	t.Parallel()

	open := map[string]func(t *testing.T) Backend{
		BackendFile: func(t *testing.T) Backend {
			b, err := OpenBackend(BackendFile, t.TempDir())
			require.NoError(t, err)
			return b
		},
		BackendSQLite: func(t *testing.T) Backend {
			b, err := OpenBackend(BackendSQLite, t.TempDir())
			require.NoError(t, err)
			return b
		},
		BackendMemory: func(t *testing.T) Backend {
			b, err := OpenBackend(BackendMemory, "")
			require.NoError(t, err)
			return b
		},
	}

	for name, mk := range open {
		t.Run(name, func(t *testing.T) {
			b := mk(t)
			t.Cleanup(func() { _ = b.Close() })

			_, ok, err := b.Get("absent")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, b.Put("k", []byte("v1")))
			require.NoError(t, b.Put("k", []byte("v2")))
			v, ok, err := b.Get("k")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []byte("v2"), v)

			require.NoError(t, b.Delete("k"))
			require.NoError(t, b.Delete("k"))
			_, ok, err = b.Get("k")
			require.NoError(t, err)
			assert.False(t, ok)

			assert.ErrorIs(t, b.Put("../escape", []byte("x")), ErrInvalidKey)
		})
	}
}

func TestOpenBackendUnknownKind(t *testing.T) {
	t.Parallel()

	_, err := OpenBackend("redis", t.TempDir())
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func TestFileBackendLayout(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "data")
	b, err := NewFileBackend(dir)
	require.NoError(t, err)
	require.NoError(t, b.Put(ConfigNamespace, []byte("currentUIType: website\n")))

	data, err := os.ReadFile(filepath.Join(dir, ConfigNamespace+".yaml"))
	require.NoError(t, err)
	assert.Equal(t, "currentUIType: website\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	t.Parallel()

	b := NewMemoryBackend()
	in := []byte("abc")
	require.NoError(t, b.Put("k", in))
	in[0] = 'z'

	out, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
	out[0] = 'y'

	again, _, err := b.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
