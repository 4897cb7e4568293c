package sdlrender

import (
	"bytes"
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders an SVG document into a size x size RGBA image.
func RasterizeSVG(svg []byte, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("rasterize svg: size %d", size)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("rasterize svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return img, nil
}

// ImageList maps ListView image indices to textures. Small and large
// variants are rasterized from the same SVG.
type ImageList struct {
	renderer *sdl.Renderer
	small    []*sdl.Texture
	large    []*sdl.Texture
	smallPx  int
	largePx  int
}

// NewImageList creates an empty image list for the given edge lengths.
func NewImageList(renderer *sdl.Renderer, smallPx, largePx int) *ImageList {
	return &ImageList{renderer: renderer, smallPx: smallPx, largePx: largePx}
}

// AddSVG rasterizes svg at both sizes and returns its image index.
func (l *ImageList) AddSVG(svg []byte) (int, error) {
	small, err := l.texture(svg, l.smallPx)
	if err != nil {
		return -1, err
	}
	large, err := l.texture(svg, l.largePx)
	if err != nil {
		_ = small.Destroy()
		return -1, err
	}
	l.small = append(l.small, small)
	l.large = append(l.large, large)
	return len(l.small) - 1, nil
}

func (l *ImageList) texture(svg []byte, size int) (*sdl.Texture, error) {
	img, err := RasterizeSVG(svg, size)
	if err != nil {
		return nil, err
	}
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(unsafe.Pointer(&img.Pix[0]),
		int32(size), int32(size), 32, int32(img.Stride), uint32(sdl.PIXELFORMAT_ABGR8888))
	if err != nil {
		return nil, fmt.Errorf("icon surface: %w", err)
	}
	defer surface.Free()

	texture, err := l.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("icon texture: %w", err)
	}
	return texture, nil
}

// Get returns the texture for index at the requested size, or nil.
func (l *ImageList) Get(index int, large bool) *sdl.Texture {
	list := l.small
	if large {
		list = l.large
	}
	if index < 0 || index >= len(list) {
		return nil
	}
	return list[index]
}

// Len returns the number of images.
func (l *ImageList) Len() int { return len(l.small) }

// Destroy releases every texture.
func (l *ImageList) Destroy() {
	for _, t := range l.small {
		_ = t.Destroy()
	}
	for _, t := range l.large {
		_ = t.Destroy()
	}
	l.small, l.large = nil, nil
}
