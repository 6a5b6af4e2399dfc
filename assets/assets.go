package assets

import (
	"embed"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/healthbars/config"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// BarOverride is a per-mob health bar style set in Tiled.
type BarOverride struct {
	OffsetX, OffsetY float64
	Size             float64
	Color            color.RGBA
}

type MobSpawn struct {
	Name          string
	X, Y          float64
	Width, Height float64
	HP, MaxHP     uint32
	Bar           *BarOverride // nil = default bar
}

type Level struct {
	Name   string
	Width  int
	Height int
	Mobs   []MobSpawn
}

// LevelNames lists the embedded levels, sorted.
func LevelNames() ([]string, error) {
	matches, err := fs.Glob(assetFS, "levels/*.tmx")
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// LoadLevel parses an embedded TMX level.
func LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   path.Base(levelPath),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Mobs" {
			continue
		}
		for _, o := range og.Objects {
			spawn := MobSpawn{
				Name:   o.Name,
				X:      o.X,
				Y:      o.Y,
				Width:  o.Width,
				Height: o.Height,
				HP:     uint32(max(o.Properties.GetInt("hp"), 0)),
				MaxHP:  uint32(max(o.Properties.GetInt("maxHp"), 0)),
			}
			if spawn.MaxHP == 0 {
				spawn.MaxHP = config.Mob.DefaultMax
			}
			if spawn.Width == 0 || spawn.Height == 0 {
				spawn.Width, spawn.Height = config.Mob.Width, config.Mob.Height
			}

			bar, err := parseBarOverride(o.Properties)
			if err != nil {
				return nil, fmt.Errorf("mob %q in %s: %w", o.Name, levelPath, err)
			}
			spawn.Bar = bar

			level.Mobs = append(level.Mobs, spawn)
		}
	}

	return level, nil
}

// parseBarOverride returns nil unless the object sets a barColor or barSize.
func parseBarOverride(props tiled.Properties) (*BarOverride, error) {
	colorName := props.GetString("barColor")
	size := props.GetFloat("barSize")
	if colorName == "" && size == 0 {
		return nil, nil
	}

	bar := &BarOverride{
		OffsetX: props.GetFloat("barOffsetX"),
		OffsetY: props.GetFloat("barOffsetY"),
		Size:    size,
		Color:   config.HealthBar.Color,
	}
	if bar.Size <= 0 {
		bar.Size = config.HealthBar.Size
	}
	if colorName != "" {
		c, err := config.ParseColor(colorName)
		if err != nil {
			return nil, err
		}
		bar.Color = c
	}
	return bar, nil
}
