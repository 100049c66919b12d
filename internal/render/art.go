package render

import (
	"crypto/md5"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Art returns ANSI half-block art for an illustration image. Generated art
// is cached in cacheDir, keyed by image path and width. An empty cacheDir
// disables caching.
func Art(imagePath, cacheDir string, width int) (string, error) {
	var cachePath string
	if cacheDir != "" {
		artDir := filepath.Join(cacheDir, "ansi_cache")
		if err := os.MkdirAll(artDir, 0755); err != nil {
			return "", fmt.Errorf("failed to create ANSI cache directory: %v", err)
		}

		key := fmt.Sprintf("%s@%d", imagePath, width)
		cachePath = filepath.Join(artDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))

		if data, err := os.ReadFile(cachePath); err == nil {
			return string(data), nil
		}
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %v", err)
	}

	// Card illustrations are roughly 4:3, each cell holds two pixel rows
	height := width * 3 / 8
	if height < 1 {
		height = 1
	}
	art := ImageToAnsi(img, width, height)

	if cachePath != "" {
		if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
			return "", fmt.Errorf("failed to write ANSI art to cache: %v", err)
		}
	}

	return art, nil
}

// ImageToAnsi converts an image to width x height cells of true-color
// upper half blocks.
func ImageToAnsi(img image.Image, width, height int) string {
	// Doubled for half-block characters
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	origin := resized.Bounds().Min

	var buffer strings.Builder
	for row := 0; row < height; row++ {
		top, bottom := origin.Y+row*2, origin.Y+row*2+1
		for col := 0; col < width; col++ {
			left, right := origin.X+col*2, origin.X+col*2+1

			// Upper pixel pair is the foreground, lower pair the background
			fg := pixel(resized, left, top).BlendRgb(pixel(resized, right, top), 0.5)
			bg := pixel(resized, left, bottom).BlendRgb(pixel(resized, right, bottom), 0.5)

			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// pixel reads one pixel as a colorful.Color; points outside the image are black.
func pixel(img image.Image, x, y int) colorful.Color {
	if !image.Pt(x, y).In(img.Bounds()) {
		return colorful.Color{}
	}
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent
		return colorful.Color{}
	}
	return c
}

func ansiColorString(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}
