package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"modarith-pkg/prime"
)

func TestLoad_Defaults(t *testing.T) {
	// 設定ファイルが無いディレクトリでは既定値になる
	cfg, err := Load(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, prime.DefaultWitnessCount, cfg.WitnessCount)
	assert.Equal(t, DefaultPrimeBits, cfg.PrimeBits)
}

func TestLoad_YamlFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("witness_count: 25\nprime_bits: 32\n")
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "modarith.yaml"), yaml, 0o644))

	cfg, err := Load(dir)

	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.WitnessCount)
	assert.Equal(t, 32, cfg.PrimeBits)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MODARITH_WITNESS_COUNT", "7")

	cfg, err := Load(t.TempDir())

	assert.NoError(t, err)
	assert.Equal(t, 7, cfg.WitnessCount)
	assert.Equal(t, DefaultPrimeBits, cfg.PrimeBits)
}

func TestLoad_BrokenYaml(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "modarith.yaml"), []byte("witness_count: [1, 2\n"), 0o644))

	_, err := Load(dir)

	assert.Error(t, err)
}
