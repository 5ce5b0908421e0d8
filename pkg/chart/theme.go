package chart

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Theme selects the chart styling.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"
)

// ParseTheme accepts "dark" or "light", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Dark, Light:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q (want dark or light)", s)
}

// String, Set and Type make *Theme usable as a pflag value.
func (t *Theme) String() string { return string(*t) }

func (t *Theme) Set(s string) error {
	parsed, err := ParseTheme(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t *Theme) Type() string { return "theme" }

type style struct {
	width, height vg.Length
	background    color.Color
	foreground    color.Color
	cpu, mem      color.Color
	titleSize     vg.Length
	labelSize     vg.Length
	tickSize      vg.Length
	lineWidth     vg.Length
}

var olive = color.RGBA{R: 191, G: 191, A: 255}

func (t Theme) style() style {
	if t == Light {
		return style{
			width:      12 * vg.Inch,
			height:     8 * vg.Inch,
			background: color.White,
			foreground: color.RGBA{R: 38, G: 38, B: 38, A: 255},
			cpu:        color.RGBA{R: 76, G: 114, B: 176, A: 255},
			mem:        olive,
			titleSize:  vg.Points(14),
			labelSize:  vg.Points(15),
			tickSize:   vg.Points(13),
			lineWidth:  vg.Points(2.25),
		}
	}
	return style{
		width:      8 * vg.Inch,
		height:     6 * vg.Inch,
		background: color.Black,
		foreground: color.White,
		cpu:        color.RGBA{R: 141, G: 211, B: 199, A: 255},
		mem:        olive,
		titleSize:  vg.Points(12),
		labelSize:  vg.Points(10),
		tickSize:   vg.Points(9),
		lineWidth:  vg.Points(1.5),
	}
}
