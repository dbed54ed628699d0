package browser

import (
	"context"
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
)

// runOptions keeps the playwright driver quiet: its stdout would otherwise
// corrupt the stdio JSON-RPC framing.
func runOptions() *playwright.RunOptions {
	return &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}
}

// Install provisions the playwright driver and browser binaries. Failure is
// fatal to the process: without the runtime no tool call can ever succeed.
func Install() error {
	if err := playwright.Install(runOptions()); err != nil {
		return fmt.Errorf("failed to install playwright runtime: %w", err)
	}
	return nil
}

// ChromiumLauncher starts a headless (or headed, per config) chromium
// browser with a single context sized to the configured viewport.
func ChromiumLauncher(_ context.Context, config *Config) (Driver, error) {
	pw, err := playwright.Run(runOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(config.Headless),
		Args:     config.LaunchArgs,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}
	browserContext, err := browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  config.ViewportWidth,
			Height: config.ViewportHeight,
		},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	return &chromiumDriver{pw: pw, browser: browser, context: browserContext, config: config}, nil
}

type chromiumDriver struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	context playwright.BrowserContext
	config  *Config
}

func (d *chromiumDriver) NewPage() (Page, error) {
	page, err := d.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	page.SetDefaultTimeout(d.config.ActionTimeoutMs)
	return page, nil
}

func (d *chromiumDriver) Close() error {
	var errs []error
	if err := d.context.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := d.browser.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := d.pw.Stop(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to close browser: %v", errs)
	}
	return nil
}
