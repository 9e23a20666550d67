package display

import (
	"io"
	"os"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Color modes accepted by UseColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor resolves a color mode for w. In auto mode color is used only when
// w is a terminal and NO_COLOR is unset.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// palette holds the colors used by renderers. Each color is forced on or off
// so output does not depend on color.NoColor.
type palette struct {
	bands   map[models.Band]*color.Color
	heading *color.Color
	muted   *color.Color
	accent  *color.Color
	warn    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		bands: map[models.Band]*color.Color{
			models.BandRed:    color.New(color.FgRed, color.Bold),
			models.BandOrange: color.New(color.FgHiRed),
			models.BandYellow: color.New(color.FgYellow),
			models.BandGreen:  color.New(color.FgGreen),
		},
		heading: color.New(color.Bold),
		muted:   color.New(color.FgHiBlack),
		accent:  color.New(color.FgCyan),
		warn:    color.New(color.FgYellow),
	}
	all := []*color.Color{p.heading, p.muted, p.accent, p.warn}
	for _, c := range p.bands {
		all = append(all, c)
	}
	for _, c := range all {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) band(b models.Band) *color.Color {
	if c, ok := p.bands[b]; ok {
		return c
	}
	return p.muted
}
