package config

import (
	"testing"

	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	s, err := FromConfiguration(testconfig.Conf{})
	assert.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, pixel.Size{Width: 20, Height: 20}, s.Canvas)
	assert.Equal(t, 17, s.Baseline)
	assert.Equal(t, uint8(125), s.SeedThreshold)
}

func TestFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	conf := testconfig.Conf{
		"font.name":             "Tiny",
		"canvas.width":          12,
		"canvas.height":         "14",
		"font.baseline":         11,
		"font.movewithbaseline": false,
		"seed.size":             "9.5",
		"seed.threshold":        200,
		"history.size":          5,
	}
	s, err := FromConfiguration(conf)
	assert.NoError(t, err)
	assert.Equal(t, "Tiny", s.FontName)
	assert.Equal(t, pixel.Size{Width: 12, Height: 14}, s.Canvas)
	assert.Equal(t, 11, s.Baseline)
	assert.False(t, s.MoveGlyphsWithBaseline)
	assert.Equal(t, 9.5, s.SeedSize)
	assert.Equal(t, uint8(200), s.SeedThreshold)
	assert.Equal(t, 5, s.HistorySize)
	assert.Equal(t, 10, s.LineAdvance)
}

func TestInvalidConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gfxedit.core")
	defer teardown()
	//
	for _, conf := range []testconfig.Conf{
		{"canvas.width": 0},
		{"canvas.height": 500},
		{"seed.size": "large"},
		{"seed.threshold": 256},
		{"history.size": 0},
	} {
		_, err := FromConfiguration(conf)
		if assert.Error(t, err, "config %v", conf) {
			assert.Equal(t, core.EINVALID, core.Code(err))
		}
	}
}
