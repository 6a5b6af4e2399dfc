package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a config file. Missing keys keep the values set
// in init.
type File struct {
	Width     *int           `yaml:"width"`
	Height    *int           `yaml:"height"`
	HealthBar *HealthBarFile `yaml:"healthbar"`
}

type HealthBarFile struct {
	FontPath   *string     `yaml:"font_path"`
	AutoCreate *bool       `yaml:"auto_create"`
	Offset     *[2]float64 `yaml:"offset"`
	Size       *float64    `yaml:"size"`
	Color      *string     `yaml:"color"` // any CSS color: "red", "#0f0", "rgb(0,255,0)"
}

// Load reads a YAML config file and applies it to the global configuration.
func Load(path string) error {
	f, err := readFile(path)
	if err != nil {
		return err
	}
	return f.Apply()
}

func readFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes YAML config data without applying it.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply overlays the file onto the global configuration. Nothing is changed
// if any value is invalid.
func (f *File) Apply() error {
	c := *C
	hb := HealthBar

	if f.Width != nil {
		c.Width = *f.Width
	}
	if f.Height != nil {
		c.Height = *f.Height
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.Width, c.Height)
	}

	if b := f.HealthBar; b != nil {
		if b.FontPath != nil {
			hb.FontPath = *b.FontPath
		}
		if b.AutoCreate != nil {
			hb.AutoCreate = *b.AutoCreate
		}
		if b.Offset != nil {
			hb.OffsetX, hb.OffsetY = b.Offset[0], b.Offset[1]
		}
		if b.Size != nil {
			if *b.Size <= 0 {
				return fmt.Errorf("invalid healthbar size %v", *b.Size)
			}
			hb.Size = *b.Size
		}
		if b.Color != nil {
			col, err := ParseColor(*b.Color)
			if err != nil {
				return err
			}
			hb.Color = col
		}
	}

	*C = c
	HealthBar = hb
	return nil
}

// ParseColor parses a CSS color string.
func ParseColor(s string) (color.RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
