/*
File    : sugar/internal/sugarconfig/sugarconfig_test.go
Package : sugarconfig
*/
package sugarconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sugarlang/sugar/eval"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, eval.DefaultConfig(), cfg)
}

func TestLoadOverridesStackSizes(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte("oxy_size: 4096\ngc_size: 2048\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 4096, cfg.OxySize)
	require.Equal(t, 2048, cfg.GCSize)
}

func TestLoadPartialOverrideKeepsOtherDefault(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte("oxy_size: 8192\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, 8192, cfg.OxySize)
	require.Equal(t, eval.DefaultStackSize, cfg.GCSize)
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, FileName), []byte("oxy_size: [this is not an int\n"), 0o644)
	require.NoError(t, err)

	_, err = Load(dir)
	require.Error(t, err)
}
