// Package sdlkit hosts menuboxes in an SDL2 window. It keeps the retained
// element tree from memdoc, adds TTF-based text measurement, a paint pass
// drawing visible menuboxes over the caller's frame, and input translation
// from SDL events to menubox pointer and key events.
package sdlkit

import (
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/menubox/pkg/menubox"
	"github.com/BrandonKowalski/menubox/pkg/menubox/internal"
	"github.com/BrandonKowalski/menubox/pkg/menubox/platform/memdoc"
)

const (
	iconSize    = 16
	itemPadding = 6
)

// Options configures the SDL host document.
type Options struct {
	Title      string
	Width      int32
	Height     int32
	FontPath   string // Path to a TTF font used for item labels
	FontSize   int    // Point size; 0 means 14
	Borderless bool
}

// Document is an SDL2-backed menubox host. The element tree and layout come
// from memdoc; this type owns the window, renderer, font, and input
// translation.
type Document struct {
	*memdoc.Document

	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font
	labels   *textureCache
	icons    map[string]*sdl.Texture

	hoverBox *menubox.Menubox
}

type fontMeasurer struct {
	font *ttf.Font
}

func (m fontMeasurer) TextSize(text string) (int32, int32) {
	if text == "" {
		return 0, int32(m.font.Height())
	}
	w, h, err := m.font.SizeUTF8(text)
	if err != nil {
		return 0, int32(m.font.Height())
	}
	return int32(w), int32(h)
}

// Open initializes SDL video, creates the window and renderer, and returns
// a ready Document.
func Open(opts Options) (*Document, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, err
	}

	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = 14
	}
	font, err := ttf.OpenFont(opts.FontPath, fontSize)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	var flags uint32 = sdl.WINDOW_SHOWN
	if opts.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	window, err := sdl.CreateWindow(opts.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		opts.Width, opts.Height, flags)
	if err != nil {
		font.Close()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		font.Close()
		ttf.Quit()
		sdl.Quit()
		return nil, err
	}

	d := &Document{
		Document: memdoc.New(opts.Width, opts.Height),
		window:   window,
		renderer: renderer,
		font:     font,
		labels:   newTextureCache(),
		icons:    make(map[string]*sdl.Texture),
	}
	d.SetMeasurer(fontMeasurer{font: font})
	return d, nil
}

// Renderer exposes the SDL renderer so the host can draw its own frame
// before calling Render.
func (d *Document) Renderer() *sdl.Renderer {
	return d.renderer
}

// Close tears down SDL resources.
func (d *Document) Close() {
	d.labels.destroy()
	for _, t := range d.icons {
		t.Destroy()
	}
	d.renderer.Destroy()
	d.window.Destroy()
	d.font.Close()
	ttf.Quit()
	sdl.Quit()
}

// ProcessEvent translates one SDL event into menubox input on coord.
// Call it for every event the host polls; unrelated events pass through
// untouched.
func (d *Document) ProcessEvent(event sdl.Event, coord *menubox.Coordinator) {
	switch e := event.(type) {
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN || e.Button != sdl.BUTTON_LEFT {
			return
		}
		coord.DispatchClick(&menubox.PointerEvent{
			X:      e.X,
			Y:      e.Y,
			Target: d.hitTest(e.X, e.Y),
		})

	case *sdl.MouseMotionEvent:
		target := d.hitTest(e.X, e.Y)
		box := coord.BoxAt(target)
		if d.hoverBox != nil && box != d.hoverBox {
			d.hoverBox.HandlePointerLeave()
		}
		d.hoverBox = box
		if box != nil {
			box.HandleHover(&menubox.PointerEvent{X: e.X, Y: e.Y, Target: target})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
			coord.HandleKey(menubox.KeyEvent{Key: menubox.KeyEscape})
		}
	}
}

// hitTest returns the deepest element whose bounds contain the point.
func (d *Document) hitTest(x, y int32) menubox.Element {
	body, _ := d.Body().(*memdoc.Element)
	hit := hitTest(body, x, y)
	if hit == nil {
		return nil
	}
	return hit
}

func hitTest(e *memdoc.Element, x, y int32) *memdoc.Element {
	if e == nil || hidden(e) {
		return nil
	}
	children := e.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitTest(children[i], x, y); hit != nil {
			return hit
		}
	}
	b := e.Bounds()
	if x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom() {
		return e
	}
	return nil
}

func hidden(e *memdoc.Element) bool {
	return e.Style("visibility") == "hidden" || e.Style("display") == "none"
}

// Render paints every visible menubox over the current frame. The host
// draws its own content first, calls Render, then presents.
func (d *Document) Render() {
	body, _ := d.Body().(*memdoc.Element)
	for _, child := range body.Children() {
		if child.Tag() == "menubox" && !hidden(child) {
			d.paintBox(child)
		}
	}
}

func (d *Document) paintBox(box *memdoc.Element) {
	b := box.Bounds()
	rect := sdl.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}

	d.renderer.SetDrawColor(30, 30, 30, 240)
	d.renderer.FillRect(&rect)
	d.renderer.SetDrawColor(90, 90, 90, 255)
	d.renderer.DrawRect(&rect)

	for _, child := range box.Children() {
		if child.Tag() != "list" {
			continue
		}
		lb := child.Bounds()
		clip := sdl.Rect{X: lb.X, Y: lb.Y, W: lb.W, H: internal.Min32(lb.H, b.Bottom()-lb.Y)}
		d.renderer.SetClipRect(&clip)
		for _, row := range child.Children() {
			d.paintRow(row)
		}
		d.renderer.SetClipRect(nil)
	}
}

func (d *Document) paintRow(row *memdoc.Element) {
	b := row.Bounds()

	if row.Tag() == "separator" {
		d.renderer.SetDrawColor(90, 90, 90, 255)
		d.renderer.DrawLine(b.X+itemPadding, b.Y+b.H/2, b.Right()-itemPadding, b.Y+b.H/2)
		return
	}

	x := b.X + itemPadding
	if src := iconSource(row); src != "" {
		if tex := d.iconTexture(src); tex != nil {
			d.renderer.Copy(tex, nil, &sdl.Rect{
				X: x,
				Y: b.Y + (b.H-iconSize)/2,
				W: iconSize,
				H: iconSize,
			})
		}
		x += iconSize + itemPadding
	}

	color := sdl.Color{R: 220, G: 220, B: 220, A: 255}
	if row.HasClass("disabled") {
		color = sdl.Color{R: 120, G: 120, B: 120, A: 255}
	}
	text := rowLabel(row)
	if row.HasClass("checked") {
		text = "* " + text
	}
	if row.HasClass("has-submenu") {
		text += "  >"
	}
	if tex, w, h := d.labelTexture(text, color); tex != nil {
		d.renderer.Copy(tex, nil, &sdl.Rect{X: x, Y: b.Y + (b.H-h)/2, W: w, H: h})
	}
}

func iconSource(row *memdoc.Element) string {
	for _, c := range row.Children() {
		if c.Tag() == "icon" {
			return c.Attr("src")
		}
	}
	return ""
}

func rowLabel(row *memdoc.Element) string {
	for _, c := range row.Children() {
		if c.Tag() == "label" {
			return c.Text()
		}
	}
	return row.Text()
}

func (d *Document) labelTexture(text string, color sdl.Color) (*sdl.Texture, int32, int32) {
	if text == "" {
		return nil, 0, 0
	}
	key := text + "\x00" + string([]byte{color.R, color.G, color.B})
	if tex := d.labels.get(key); tex != nil {
		_, _, w, h, _ := tex.Query()
		return tex, w, h
	}

	surface, err := d.font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil, 0, 0
	}
	defer surface.Free()

	tex, err := d.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, 0, 0
	}
	d.labels.set(key, tex)
	return tex, surface.W, surface.H
}

// iconTexture rasterizes and caches an SVG icon source.
func (d *Document) iconTexture(src string) *sdl.Texture {
	if tex, ok := d.icons[src]; ok {
		return tex
	}

	rgba, err := menubox.RenderIcon(src, iconSize, iconSize)
	if err != nil {
		d.icons[src] = nil
		return nil
	}
	tex := d.textureFromRGBA(rgba)
	d.icons[src] = tex
	return tex
}

func (d *Document) textureFromRGBA(rgba *image.RGBA) *sdl.Texture {
	w := int32(rgba.Rect.Dx())
	h := int32(rgba.Rect.Dy())
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]), w, h, 32, int32(rgba.Stride),
		sdl.PIXELFORMAT_ABGR8888)
	if err != nil {
		return nil
	}
	defer surface.Free()

	tex, err := d.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}
	return tex
}
