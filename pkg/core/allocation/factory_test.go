package allocation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/strcore/foundation/core/config"
	scerror "github.com/msto63/strcore/foundation/core/error"
	sclog "github.com/msto63/strcore/foundation/core/log"
	"github.com/msto63/strcore/foundation/utils/allocx"
)

func TestNewAllocator(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AllocConfig
		want interface{}
	}{
		{"heap", config.AllocConfig{Kind: config.AllocHeap}, allocx.Heap{}},
		{"empty kind", config.AllocConfig{}, allocx.Heap{}},
		{"pool", config.AllocConfig{Kind: config.AllocPool}, &allocx.Pool{}},
		{"limited", config.AllocConfig{Kind: config.AllocLimited, Limit: 1024}, &allocx.Limited{}},
		{"traced", config.AllocConfig{Kind: config.AllocPool, Trace: true}, &allocx.Tracker{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAllocator(tt.cfg, nil)
			require.NoError(t, err)
			assert.IsType(t, tt.want, a)
		})
	}
}

func TestNewAllocatorLimitApplies(t *testing.T) {
	a, err := NewAllocator(config.AllocConfig{Kind: config.AllocLimited, Limit: 64}, nil)
	require.NoError(t, err)

	_, err = a.Allocate(65)
	require.Error(t, err)
	assert.True(t, scerror.HasCode(err, scerror.CodeOutOfMemory))
}

func TestNewAllocatorUnknownKind(t *testing.T) {
	_, err := NewAllocator(config.AllocConfig{Kind: "arena"}, nil)
	require.Error(t, err)
	assert.True(t, scerror.HasCode(err, scerror.CodeInvalidConfig))
}

func TestInstall(t *testing.T) {
	prev := allocx.Default()
	defer allocx.SetDefault(prev)

	var buf bytes.Buffer
	logger := sclog.NewWithConfig(sclog.Config{Level: sclog.LevelDebug, Format: sclog.FormatText, Output: &buf})

	a, err := Install(config.AllocConfig{Kind: config.AllocPool}, logger)
	require.NoError(t, err)
	assert.Same(t, a, allocx.Default())
	assert.Contains(t, buf.String(), "allocator installed")
}
