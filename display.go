package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// defaultTextureCacheSize is used when the configured size is invalid
const defaultTextureCacheSize = 8

// Window is the part of the windowing system the display drives
type Window interface {
	SetTitle(title string)
	SetSize(width, height int)
	SetPosition(x, y int)
	Show()
}

// ebitenWindow drives the single ebiten window
type ebitenWindow struct{}

func (ebitenWindow) SetTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (ebitenWindow) SetSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (ebitenWindow) SetPosition(x, y int) {
	ebiten.SetWindowPosition(x, y)
}

func (ebitenWindow) Show() {
	if ebiten.IsWindowMinimized() {
		ebiten.RestoreWindow()
	}
}

// Used when the monitor size cannot be queried
const (
	fallbackScreenWidth  = 1920
	fallbackScreenHeight = 1080
)

// primaryScreenBounds returns the size of the monitor the window opens on.
func primaryScreenBounds() ScreenBounds {
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return ScreenBounds{Width: w, Height: h}
		}
	}
	log.Printf("Warning: Could not query monitor size, assuming %dx%d", fallbackScreenWidth, fallbackScreenHeight)
	return ScreenBounds{Width: fallbackScreenWidth, Height: fallbackScreenHeight}
}

// Display sizes, centers and titles the window for the selected picture and
// hands the picture's texture to the renderer.
type Display struct {
	store    *PictureStore
	screen   ScreenBounds
	window   Window
	textures *lru.Cache[int, *ebiten.Image]

	current    int
	fit        FitResult
	shown      bool
	frameDirty bool
}

// NewDisplay creates a Display. Textures for up to cacheSize pictures are
// kept on the GPU; older ones are deallocated.
func NewDisplay(store *PictureStore, screen ScreenBounds, window Window, cacheSize int) *Display {
	if cacheSize < 1 {
		cacheSize = defaultTextureCacheSize
	}
	textures, err := lru.NewWithEvict[int, *ebiten.Image](cacheSize, func(_ int, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	})
	if err != nil {
		log.Printf("Error: Failed to create texture cache: %v", err)
		textures, _ = lru.NewWithEvict[int, *ebiten.Image](defaultTextureCacheSize, func(_ int, img *ebiten.Image) {
			if img != nil {
				img.Deallocate()
			}
		})
	}

	return &Display{
		store:    store,
		screen:   screen,
		window:   window,
		textures: textures,
	}
}

// Show fits the picture at idx to the screen and reconfigures the window for it.
func (d *Display) Show(idx int) error {
	pic, err := d.store.Get(idx)
	if err != nil {
		return err
	}

	w, h := pic.Size()
	fit := Fit(w, h, d.screen)
	if fit.Oversized {
		log.Printf("Picture bigger than screen! %s: %dx%d scaled to %dx%d (%.0f%%)",
			pic.Name, w, h, fit.Width, fit.Height, fit.Scale*100)
	}

	d.window.SetSize(fit.Width, fit.Height)
	d.window.SetPosition(centerOffset(fit.Width, fit.Height, d.screen))
	d.window.SetTitle(pic.Name)
	d.window.Show()

	d.current = idx
	d.fit = fit
	d.shown = true
	d.frameDirty = true
	debugLog("Showing [%d/%d] %s at %dx%d", idx+1, d.store.Len(), pic.Name, fit.Width, fit.Height)
	return nil
}

// Current returns the picture on screen and how it was fitted.
func (d *Display) Current() (Picture, FitResult, bool) {
	if !d.shown {
		return Picture{}, FitResult{}, false
	}
	pic, err := d.store.Get(d.current)
	if err != nil {
		return Picture{}, FitResult{}, false
	}
	return pic, d.fit, true
}

// CurrentIndex returns the index of the picture on screen.
func (d *Display) CurrentIndex() int {
	return d.current
}

// ConsumeFrame reports whether a picture was shown since the last call.
func (d *Display) ConsumeFrame() bool {
	dirty := d.frameDirty
	d.frameDirty = false
	return dirty
}

// Texture returns the GPU image for the picture on screen, uploading it on first use.
func (d *Display) Texture() *ebiten.Image {
	if !d.shown {
		return nil
	}
	if tex, ok := d.textures.Get(d.current); ok {
		return tex
	}
	pic, err := d.store.Get(d.current)
	if err != nil || pic.Image == nil {
		return nil
	}
	tex := ebiten.NewImageFromImage(pic.Image)
	d.textures.Add(d.current, tex)
	debugLog("Texture upload for %s (cache: %d items)", pic.Name, d.textures.Len())
	return tex
}
