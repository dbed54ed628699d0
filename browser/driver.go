package browser

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Page is the subset of playwright.Page the bridge drives. It exists so the
// manager can be exercised without a real browser behind it.
type Page interface {
	Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error)
	Click(selector string, options ...playwright.PageClickOptions) error
	Type(selector string, text string, options ...playwright.PageTypeOptions) error
	Hover(selector string, options ...playwright.PageHoverOptions) error
	SelectOption(selector string, values playwright.SelectOptionValues, options ...playwright.PageSelectOptionOptions) ([]string, error)
	WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error)
	Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error)
	Content() (string, error)
	Title() (string, error)
	URL() string
	Close(options ...playwright.PageCloseOptions) error
}

// Driver owns one launched browser instance and mints pages against its
// context.
type Driver interface {
	NewPage() (Page, error)
	Close() error
}

// Launcher starts a browser and returns its driver. The default launcher
// starts chromium via playwright; tests substitute a fake.
type Launcher func(ctx context.Context, config *Config) (Driver, error)
