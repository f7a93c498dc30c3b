package menubox

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strings"

	_ "github.com/BrandonKowalski/certifiable" // Add CA certificates to the default trust store
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RenderIcon rasterizes an SVG icon source into an RGBA image of the given
// size. The source may be a file path or an http(s) URL. Backends call this
// when painting item nodes that carry an icon attribute.
func RenderIcon(src string, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %dx%d", w, h)
	}

	reader, err := openIconSource(src)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	icon, err := oksvg.ReadIconStream(reader)
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", src, err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

func openIconSource(src string) (io.ReadCloser, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		resp, err := http.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetch icon %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch icon %s: status %s", src, resp.Status)
		}
		return resp.Body, nil
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("open icon: %w", err)
	}
	return f, nil
}
