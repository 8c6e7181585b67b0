// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package lbdd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	tb := newTable(t)
	cfg := tb.Config()
	assert.Equal(t, _DEFAULTNODESIZE, cfg.Nodesize)
	assert.Equal(t, _DEFAULTLOAD, cfg.Loadfactor)
	assert.Equal(t, _DEFAULTRATIO, cfg.Cacheratio)
	assert.Equal(t, LocalityHash{}, cfg.Hasher)
	assert.NotNil(t, cfg.Logger)
	assert.Equal(t, 0, cfg.Maxnodesize)
}

func TestOptionsValidation(t *testing.T) {
	var optionTests = []struct {
		name string
		opt  Option
	}{
		{"negative nodesize", Nodesize(-1)},
		{"negative maxnodesize", Maxnodesize(-5)},
		{"maxnodesize too small", Maxnodesize(1)},
		{"loadfactor too large", Loadfactor(1.5)},
		{"loadfactor zero", Loadfactor(0)},
		{"negative cachesize", Cachesize(-1)},
		{"cacheratio zero", Cacheratio(0)},
	}
	for _, tt := range optionTests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opt)
			assert.ErrorIs(t, err, ErrConfig)
		})
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
nodesize: 4096
maxnodesize: 100000
loadfactor: 0.5
cacheratio: 50
taskhash: xxhash
`))
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.Nodesize)
	assert.Equal(t, 100000, cfg.Maxnodesize)
	assert.Equal(t, 0.5, cfg.Loadfactor)
	assert.Equal(t, 50, cfg.Cacheratio)
	assert.Equal(t, 0, cfg.Cachesize)

	tb := newTable(t, WithConfig(cfg), Cachesize(2048))
	assert.Equal(t, XXHash{}, tb.Config().Hasher)
	assert.Equal(t, 2048, tb.cachesize())

	_, err = ParseConfig([]byte("taskhash: sha256\n"))
	assert.ErrorIs(t, err, ErrConfig)
	_, err = ParseConfig([]byte("loadfactor: [1, 2]\n"))
	assert.ErrorIs(t, err, ErrConfig)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lbdd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodesize: 64\ntaskhash: knuth\n"), 0o600))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Nodesize)
	assert.Equal(t, "knuth", cfg.TaskHash)
	assert.Equal(t, _DEFAULTLOAD, cfg.Loadfactor)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCachesize(t *testing.T) {
	tb := newTable(t)
	assert.Equal(t, tb.Len()+_HASHBLOCK, tb.cachesize())
	small := newTable(t, Cachesize(3))
	assert.Equal(t, 3, small.cachesize())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	tb := newTable(t, Logger(logger), Nodesize(2))
	x := vars(t, tb, 10)
	_, err := tb.And(x...)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "new table")
	assert.Contains(t, out, "rehash unique index")
	assert.Contains(t, out, "apply")
	assert.Contains(t, out, tb.ID().String())
}

func TestHasherByName(t *testing.T) {
	for _, name := range []string{"locality", "knuth", "xxhash", "constant"} {
		h, err := hasherByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, h.String())
	}
	_, err := hasherByName("md5")
	assert.ErrorIs(t, err, ErrConfig)
}
