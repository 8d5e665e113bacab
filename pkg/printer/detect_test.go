package printer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVendor(t *testing.T, root, device, id string) {
	t.Helper()
	dir := filepath.Join(root, device)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "idVendor"), []byte(id+"\n"), 0o644))
}

func TestDetectThermalVendor(t *testing.T) {
	t.Parallel()

	t.Run("epson device", func(t *testing.T) {
		root := t.TempDir()
		writeVendor(t, root, "1-1", "04b8")
		assert.Equal(t, "Epson", detectThermalVendor(root))
	})

	t.Run("star device among others", func(t *testing.T) {
		root := t.TempDir()
		writeVendor(t, root, "1-1", "dead") // unknown vendor
		writeVendor(t, root, "1-2", "0519")
		assert.Equal(t, "Star Micronics", detectThermalVendor(root))
	})

	t.Run("no thermal device", func(t *testing.T) {
		root := t.TempDir()
		writeVendor(t, root, "1-1", "beef")
		assert.Equal(t, "", detectThermalVendor(root))
	})

	t.Run("device without idVendor is skipped", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "usb1"), 0o755))
		writeVendor(t, root, "1-2", "1a86")
		assert.Equal(t, "QinHeng Electronics", detectThermalVendor(root))
	})

	t.Run("garbage idVendor is skipped", func(t *testing.T) {
		root := t.TempDir()
		writeVendor(t, root, "1-1", "not-hex")
		assert.Equal(t, "", detectThermalVendor(root))
	})

	t.Run("missing registry", func(t *testing.T) {
		assert.Equal(t, "", detectThermalVendor("/does/not/exist"))
	})
}

func TestProbeIsFresh(t *testing.T) {
	t.Parallel()

	// the probe recomputes capability each call rather than caching
	a := Probe()
	b := Probe()
	assert.Equal(t, a, b)
}
