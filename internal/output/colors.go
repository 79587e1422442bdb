package output

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

type colorFunc func(format string, a ...interface{}) string

// Colors holds the color functions for different output types
type Colors struct {
	Time    colorFunc
	Airport colorFunc
	Airline colorFunc
	Price   colorFunc
	Rating  colorFunc
	Stops   colorFunc
	Error   colorFunc
	Header  colorFunc
	Muted   colorFunc
}

// NewColors creates a new Colors instance based on the color mode
func NewColors(mode ColorMode) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
		color.NoColor = false // Force colors on
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	if !useColors {
		noColor := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Time:    noColor,
			Airport: noColor,
			Airline: noColor,
			Price:   noColor,
			Rating:  noColor,
			Stops:   noColor,
			Error:   noColor,
			Header:  noColor,
			Muted:   noColor,
		}
	}

	return &Colors{
		Time:    color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Airport: color.New(color.FgCyan, color.Bold).SprintfFunc(),
		Airline: color.New(color.FgWhite).SprintfFunc(),
		Price:   color.New(color.FgGreen, color.Bold).SprintfFunc(),
		Rating:  color.New(color.FgYellow).SprintfFunc(),
		Stops:   color.New(color.FgMagenta).SprintfFunc(),
		Error:   color.New(color.FgRed, color.Bold).SprintfFunc(),
		Header:  color.New(color.FgWhite, color.Bold).SprintfFunc(),
		Muted:   color.New(color.FgHiBlack).SprintfFunc(),
	}
}

// FormatPrice renders whole currency units as "$1,199"
func FormatPrice(price int) string {
	return "$" + humanize.Comma(int64(price))
}

// FormatRating renders a 0-5 rating with one decimal ("4.0")
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
