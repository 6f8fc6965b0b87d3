package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"
)

//go:embed sprites/*.png
var assetsFS embed.FS

const spriteDir = "sprites"

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(p string) (*ebiten.Image, error) {
	b, err := LoadFile(p)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(p string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(p))
}

// SpriteNames lists the embedded sprites by name, without extension.
func SpriteNames() ([]string, error) {
	entries, err := assetsFS.ReadDir(spriteDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".png" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".png"))
	}
	sort.Strings(names)
	return names, nil
}

func cleanAssetPath(p string) string {
	s := strings.ReplaceAll(p, "\\", "/")
	s = strings.TrimPrefix(s, "assets/")
	if !strings.Contains(s, "/") {
		s = path.Join(spriteDir, s)
	}
	if path.Ext(s) == "" {
		s += ".png"
	}
	return s
}

// Library maps sprite names to images. Names with no embedded image get a
// flat placeholder so a bad name never stops rendering.
type Library struct {
	images      map[string]*ebiten.Image
	placeholder *ebiten.Image
	size        int
}

func NewLibrary(size int) (*Library, error) {
	names, err := SpriteNames()
	if err != nil {
		return nil, fmt.Errorf("assets: list sprites: %w", err)
	}
	lib := &Library{images: make(map[string]*ebiten.Image, len(names)), size: size}
	for _, name := range names {
		img, err := LoadImage(name)
		if err != nil {
			return nil, err
		}
		lib.images[name] = img
	}
	return lib, nil
}

// Image returns the sprite for name and whether it was found.
func (l *Library) Image(name string) (*ebiten.Image, bool) {
	if img, ok := l.images[name]; ok {
		return img, true
	}
	if l.placeholder == nil {
		l.placeholder = Solid(l.size, l.size, colornames.Magenta)
	}
	return l.placeholder, false
}

func Solid(w, h int, c color.Color) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	return img
}
