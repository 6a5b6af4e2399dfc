package fonts

import (
	"fmt"
	"io/fs"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

type FontName string

const (
	HealthBar FontName = "healthbar"
)

type faceKey struct {
	name FontName
	size float64
}

var (
	sources = map[FontName]*truetype.Font{}
	faces   = map[faceKey]font.Face{}
)

// Face returns the face of the font at the given size, creating and caching
// it on first use. ok is false if the font was never loaded.
func (f FontName) Face(size float64) (font.Face, bool) {
	key := faceKey{name: f, size: size}
	if face, ok := faces[key]; ok {
		return face, true
	}
	src, ok := sources[f]
	if !ok {
		return nil, false
	}
	face := truetype.NewFace(src, &truetype.Options{Size: size})
	faces[key] = face
	return face, true
}

func (f FontName) Loaded() bool {
	_, ok := sources[f]
	return ok
}

// Load parses TTF data and registers it under name, replacing any font
// already registered there.
func Load(name FontName, ttf []byte) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	for key := range faces {
		if key.name == name {
			delete(faces, key)
		}
	}
	sources[name] = fontData
	return nil
}

// LoadFile reads a TTF file from fsys and registers it under name.
func LoadFile(fsys fs.FS, name FontName, path string) error {
	ttf, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return Load(name, ttf)
}
