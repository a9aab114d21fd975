/*
Package config holds the settings of an editing session.

Settings are read from a schuko configuration. Keys which are not set keep
their default values:

    font.name              name of a new font               "New Font"
    font.lineadvance       line advance of a new font       10
    font.baseline          baseline row on the canvas       17
    font.movewithbaseline  move glyphs with the baseline    true
    canvas.width           width of the editing canvas      20
    canvas.height          height of the editing canvas     20
    seed.font              font to seed glyphs from         "Vevey Positive"
    seed.size              size of the seeding font         17
    seed.threshold         darkness to switch on a pixel    125
    history.size           undo steps per glyph             50

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"strconv"

	"github.com/npillmayer/gfxedit/core"
	"github.com/npillmayer/gfxedit/core/pixel"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gfxedit.core'.
func tracer() tracing.Trace {
	return tracing.Select("gfxedit.core")
}

// Settings are the parameters of an editing session.
type Settings struct {
	FontName               string
	LineAdvance            int
	Baseline               int
	MoveGlyphsWithBaseline bool
	Canvas                 pixel.Size
	SeedFont               string
	SeedSize               float64
	SeedThreshold          uint8
	HistorySize            int
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		FontName:               "New Font",
		LineAdvance:            10,
		Baseline:               17,
		MoveGlyphsWithBaseline: true,
		Canvas:                 pixel.Size{Width: 20, Height: 20},
		SeedFont:               "Vevey Positive",
		SeedSize:               17,
		SeedThreshold:          125,
		HistorySize:            50,
	}
}

// FromConfiguration reads settings from conf. Missing keys default to the
// values of Default. A nil conf yields the default settings.
func FromConfiguration(conf schuko.Configuration) (Settings, error) {
	s := Default()
	if conf == nil {
		return s, nil
	}
	if conf.IsSet("font.name") {
		s.FontName = conf.GetString("font.name")
	}
	setInt(conf, "font.lineadvance", &s.LineAdvance)
	setInt(conf, "font.baseline", &s.Baseline)
	if conf.IsSet("font.movewithbaseline") {
		s.MoveGlyphsWithBaseline = conf.GetBool("font.movewithbaseline")
	}
	setInt(conf, "canvas.width", &s.Canvas.Width)
	setInt(conf, "canvas.height", &s.Canvas.Height)
	if conf.IsSet("seed.font") {
		s.SeedFont = conf.GetString("seed.font")
	}
	if conf.IsSet("seed.size") {
		size, err := strconv.ParseFloat(conf.GetString("seed.size"), 64)
		if err != nil {
			return s, core.WrapError(err, core.EINVALID, "seed.size is not a number: %q",
				conf.GetString("seed.size"))
		}
		s.SeedSize = size
	}
	if conf.IsSet("seed.threshold") {
		t := conf.GetInt("seed.threshold")
		if t < 0 || t > 255 {
			return s, core.Error(core.EINVALID, "seed.threshold must be 0…255, is %d", t)
		}
		s.SeedThreshold = uint8(t)
	}
	setInt(conf, "history.size", &s.HistorySize)
	tracer().Debugf("settings: %+v", s)
	return s, s.Validate()
}

func setInt(conf schuko.Configuration, key string, v *int) {
	if conf.IsSet(key) {
		*v = conf.GetInt(key)
	}
}

// Validate checks the settings for values the editor cannot work with.
// The canvas has to fit into the range of pixel coordinates.
func (s Settings) Validate() error {
	switch {
	case s.Canvas.Width < 1 || s.Canvas.Width > pixel.MaxCoord+1:
		return core.Error(core.EINVALID, "canvas width must be 1…%d, is %d", pixel.MaxCoord+1, s.Canvas.Width)
	case s.Canvas.Height < 1 || s.Canvas.Height > pixel.MaxCoord+1:
		return core.Error(core.EINVALID, "canvas height must be 1…%d, is %d", pixel.MaxCoord+1, s.Canvas.Height)
	case s.LineAdvance < 0:
		return core.Error(core.EINVALID, "line advance must not be negative, is %d", s.LineAdvance)
	case s.HistorySize < 1:
		return core.Error(core.EINVALID, "history size must be positive, is %d", s.HistorySize)
	}
	return nil
}
