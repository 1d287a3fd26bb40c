package cmd

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/bggxml/config"
)

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"161936", "13"})
	require.NoError(t, err)
	assert.Equal(t, []int{161936, 13}, ids)

	for _, bad := range []string{"abc", "0", "-4", "1.5"} {
		_, err := parseIDs([]string{"1", bad})
		assert.ErrorContains(t, err, "invalid game id '"+bad+"'")
	}
}

func TestCollectionFilter(t *testing.T) {
	t.Cleanup(func() {
		filterExpr, preset, cfg = "", "", nil
	})
	cfg = &config.Config{Filter: config.FilterConfig{Presets: map[string]string{
		"shelf": "Own && Plays == 0",
	}}}

	filterExpr, preset = "", ""
	f, err := collectionFilter()
	require.NoError(t, err)
	assert.Nil(t, f)

	preset = "shelf"
	f, err = collectionFilter()
	require.NoError(t, err)
	assert.Equal(t, "Own && Plays == 0", f.Expression())

	filterExpr = "Wishlist"
	f, err = collectionFilter()
	require.NoError(t, err)
	assert.Equal(t, "Wishlist", f.Expression(), "--filter wins over --preset")

	filterExpr, preset = "", "missing"
	_, err = collectionFilter()
	assert.ErrorContains(t, err, "preset 'missing' not found")

	filterExpr = "Own &&"
	_, err = collectionFilter()
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestSetupLogger(t *testing.T) {
	old := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(old) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestCurrentVersion(t *testing.T) {
	old := version
	t.Cleanup(func() { version = old })

	version = "v1.4.2"
	v, ok := currentVersion()
	require.True(t, ok)
	assert.Equal(t, "1.4.2", v.String())

	version = "dev"
	_, ok = currentVersion()
	assert.False(t, ok)
}

func TestClientOptions(t *testing.T) {
	c := &config.Config{
		BGG:   config.BGGConfig{BaseURL: "http://localhost:1", UserAgent: "test"},
		Batch: config.BatchConfig{Concurrency: 2},
	}
	assert.Len(t, clientOptions(c), 5)
}
