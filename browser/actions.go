package browser

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
)

// Navigate loads url in the active page and returns the page title.
func (m *Manager) Navigate(ctx context.Context, pageURL string, timeoutMs float64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return "", err
	}
	timeout := m.navigationTimeout(timeoutMs)
	if _, err := m.page.Goto(pageURL, playwright.PageGotoOptions{Timeout: playwright.Float(timeout)}); err != nil {
		if isTimeout(err) {
			return "", NewError(KindTimeout, fmt.Sprintf("navigation to %v exceeded %vms", pageURL, timeout), err)
		}
		return "", NewError(KindNavigationError, fmt.Sprintf("failed to navigate to %v", pageURL), err)
	}
	title, err := m.page.Title()
	if err != nil {
		title = ""
	}
	return title, nil
}

// Click clicks the first element matching selector.
func (m *Manager) Click(ctx context.Context, selector string, timeoutMs float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	timeout := m.actionTimeout(timeoutMs)
	if err := m.awaitSelector(selector, timeout); err != nil {
		return err
	}
	if err := m.page.Click(selector, playwright.PageClickOptions{Timeout: playwright.Float(timeout)}); err != nil {
		return classifyAction(err, fmt.Sprintf("failed to click on %v", selector))
	}
	return nil
}

// TypeText types text into the element matching selector, appending to any
// existing content.
func (m *Manager) TypeText(ctx context.Context, selector, text string, timeoutMs float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	timeout := m.actionTimeout(timeoutMs)
	if err := m.awaitSelector(selector, timeout); err != nil {
		return err
	}
	if err := m.page.Type(selector, text, playwright.PageTypeOptions{Timeout: playwright.Float(timeout)}); err != nil {
		return classifyAction(err, fmt.Sprintf("failed to type into %v", selector))
	}
	return nil
}

// Hover moves the pointer over the element matching selector.
func (m *Manager) Hover(ctx context.Context, selector string, timeoutMs float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	timeout := m.actionTimeout(timeoutMs)
	if err := m.awaitSelector(selector, timeout); err != nil {
		return err
	}
	if err := m.page.Hover(selector, playwright.PageHoverOptions{Timeout: playwright.Float(timeout)}); err != nil {
		return classifyAction(err, fmt.Sprintf("failed to hover over %v", selector))
	}
	return nil
}

// SelectOption selects value in the dropdown matching selector.
func (m *Manager) SelectOption(ctx context.Context, selector, value string, timeoutMs float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	timeout := m.actionTimeout(timeoutMs)
	if err := m.awaitSelector(selector, timeout); err != nil {
		return err
	}
	values := []string{value}
	if _, err := m.page.SelectOption(selector, playwright.SelectOptionValues{Values: &values},
		playwright.PageSelectOptionOptions{Timeout: playwright.Float(timeout)}); err != nil {
		return classifyAction(err, fmt.Sprintf("failed to select option in %v", selector))
	}
	return nil
}

// WaitForSelector blocks until selector appears or the bounded wait expires,
// in which case the failure kind is Timeout.
func (m *Manager) WaitForSelector(ctx context.Context, selector string, timeoutMs float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	timeout := m.actionTimeout(timeoutMs)
	if _, err := m.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{Timeout: playwright.Float(timeout)}); err != nil {
		return NewError(KindTimeout, fmt.Sprintf("element %v did not appear within %vms", selector, timeout), err)
	}
	return nil
}

// PageContent returns the HTML of the active page, capped at the configured
// maximum length.
func (m *Manager) PageContent(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return "", err
	}
	content, err := m.page.Content()
	if err != nil {
		return "", classifyAction(err, "failed to get page content")
	}
	if len(content) > m.config.MaxContentLength {
		cut := m.config.MaxContentLength
		// never split a multi-byte rune at the cap
		for cut > 0 && !utf8.RuneStart(content[cut]) {
			cut--
		}
		content = content[:cut] + "... (content truncated)"
	}
	return content, nil
}

// Screenshot captures the active page and stores the PNG under the
// configured output location, returning the stored URL. An empty name yields
// a collision-free generated one.
func (m *Manager) Screenshot(ctx context.Context, name string, fullPage bool) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return "", err
	}
	data, err := m.page.Screenshot(playwright.PageScreenshotOptions{FullPage: playwright.Bool(fullPage)})
	if err != nil {
		return "", classifyAction(err, "failed to take screenshot")
	}
	if name == "" {
		name = fmt.Sprintf("screenshot-%v-%v.png", time.Now().UTC().Format("20060102T150405"), uuid.New().String())
	} else {
		// caller-supplied names never escape the output location
		name = path.Base(name)
	}
	location := url.Join(m.config.OutputURL, name)
	if err := m.fs.Upload(ctx, location, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return "", NewError(KindInternalError, fmt.Sprintf("failed to store screenshot at %v", location), err)
	}
	return location, nil
}

// NewTab opens a new page and makes it the active one; the previous page
// stays open in the browser context.
func (m *Manager) NewTab(ctx context.Context, pageURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureReady(ctx); err != nil {
		return err
	}
	page, err := m.driver.NewPage()
	if err != nil {
		return NewError(KindInternalError, "failed to open new tab", err)
	}
	if pageURL != "" {
		if _, err := page.Goto(pageURL, playwright.PageGotoOptions{Timeout: playwright.Float(m.config.NavigationTimeoutMs)}); err != nil {
			_ = page.Close()
			if isTimeout(err) {
				return NewError(KindTimeout, fmt.Sprintf("navigation to %v timed out", pageURL), err)
			}
			return NewError(KindNavigationError, fmt.Sprintf("failed to navigate new tab to %v", pageURL), err)
		}
	}
	m.page = page
	return nil
}

// awaitSelector bounds selector resolution; a selector that never appears is
// an ElementNotFound, distinct from an exceeded explicit wait.
func (m *Manager) awaitSelector(selector string, timeoutMs float64) error {
	if _, err := m.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{Timeout: playwright.Float(timeoutMs)}); err != nil {
		return NewError(KindElementNotFound, fmt.Sprintf("no element matches selector %v within %vms", selector, timeoutMs), err)
	}
	return nil
}

func classifyAction(err error, message string) error {
	if isTimeout(err) {
		return NewError(KindTimeout, message, err)
	}
	return NewError(KindInternalError, message, err)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "timeout")
}
