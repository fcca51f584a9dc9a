package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
)

// A4 paper size in inches for PagePrintToPDF.
const (
	a4WidthIn  = 8.27
	a4HeightIn = 11.69
)

// Chrome renders through a freshly launched headless Chromium. Every call
// launches and tears down its own isolated instance; nothing is reused
// across requests.
type Chrome struct {
	timeout time.Duration
	logger  *slog.Logger
}

func NewChrome(logger *slog.Logger) *Chrome {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chrome{timeout: 30 * time.Second, logger: logger}
}

func (c *Chrome) PDF(ctx context.Context, html string, vp Viewport) ([]byte, error) {
	var out []byte
	err := c.withPage(ctx, html, vp, func(page *rod.Page) error {
		stream, err := page.PDF(&proto.PagePrintToPDF{
			PrintBackground: true,
			PaperWidth:      ptr(a4WidthIn),
			PaperHeight:     ptr(a4HeightIn),
		})
		if err != nil {
			return fmt.Errorf("print to pdf: %w", err)
		}
		out, err = io.ReadAll(stream)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Chrome) PNG(ctx context.Context, html string, vp Viewport, fullPage bool) ([]byte, error) {
	var out []byte
	err := c.withPage(ctx, html, vp, func(page *rod.Page) error {
		png, err := page.Screenshot(fullPage, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return fmt.Errorf("screenshot: %w", err)
		}
		out = png
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// withPage launches a browser, loads the document, waits for layout to
// settle, runs fn, and tears everything down in all paths.
func (c *Chrome) withPage(ctx context.Context, html string, vp Viewport, fn func(*rod.Page) error) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	launch := launcher.New().
		Headless(true).
		Set(flags.NoSandbox)
	controlURL, err := launch.Launch()
	if err != nil {
		return fmt.Errorf("launch chrome: %w", err)
	}
	defer launch.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			c.logger.Warn("browser close failed", "err", err)
		}
	}()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}

	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	})
	if err != nil {
		return fmt.Errorf("set viewport: %w", err)
	}

	if err := page.SetDocumentContent(html); err != nil {
		return fmt.Errorf("set content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	// Two animation frames so pending layout and image decodes settle before
	// we freeze the document.
	_, err = page.Eval(`() => new Promise(r => requestAnimationFrame(() => requestAnimationFrame(r)))`)
	if err != nil {
		return fmt.Errorf("settle frames: %w", err)
	}

	return fn(page)
}

func ptr(f float64) *float64 { return &f }
