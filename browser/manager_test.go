package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
)

type fakePage struct {
	title      string
	content    string
	gotoErr    error
	waitErr    map[string]error
	actionErr  error
	screenshot []byte
	visited    []string
	clicked    []string
	typed      map[string]string
	closed     bool
}

func newFakePage() *fakePage {
	return &fakePage{
		title:      "Example",
		content:    "<html><body>hello</body></html>",
		screenshot: []byte("png-bytes"),
		waitErr:    map[string]error{},
		typed:      map[string]string{},
	}
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	if p.gotoErr != nil {
		return nil, p.gotoErr
	}
	p.visited = append(p.visited, url)
	return nil, nil
}

func (p *fakePage) Click(selector string, options ...playwright.PageClickOptions) error {
	if p.actionErr != nil {
		return p.actionErr
	}
	p.clicked = append(p.clicked, selector)
	return nil
}

func (p *fakePage) Type(selector string, text string, options ...playwright.PageTypeOptions) error {
	if p.actionErr != nil {
		return p.actionErr
	}
	p.typed[selector] += text
	return nil
}

func (p *fakePage) Hover(selector string, options ...playwright.PageHoverOptions) error {
	return p.actionErr
}

func (p *fakePage) SelectOption(selector string, values playwright.SelectOptionValues, options ...playwright.PageSelectOptionOptions) ([]string, error) {
	if p.actionErr != nil {
		return nil, p.actionErr
	}
	return *values.Values, nil
}

func (p *fakePage) WaitForSelector(selector string, options ...playwright.PageWaitForSelectorOptions) (playwright.ElementHandle, error) {
	if err, ok := p.waitErr[selector]; ok {
		return nil, err
	}
	return nil, nil
}

func (p *fakePage) Screenshot(options ...playwright.PageScreenshotOptions) ([]byte, error) {
	return p.screenshot, nil
}

func (p *fakePage) Content() (string, error) {
	return p.content, nil
}

func (p *fakePage) Title() (string, error) {
	return p.title, nil
}

func (p *fakePage) URL() string {
	if len(p.visited) == 0 {
		return "about:blank"
	}
	return p.visited[len(p.visited)-1]
}

func (p *fakePage) Close(options ...playwright.PageCloseOptions) error {
	p.closed = true
	return nil
}

type fakeDriver struct {
	mu         sync.Mutex
	pages      []*fakePage
	newPage    func() *fakePage
	newPageErr error
	closed     bool
}

func (d *fakeDriver) NewPage() (Page, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.newPageErr != nil {
		return nil, d.newPageErr
	}
	page := newFakePage()
	if d.newPage != nil {
		page = d.newPage()
	}
	d.pages = append(d.pages, page)
	return page, nil
}

func (d *fakeDriver) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

type fakeLauncher struct {
	launches int32
	failures int32
	driver   *fakeDriver
}

func (l *fakeLauncher) launch(ctx context.Context, config *Config) (Driver, error) {
	atomic.AddInt32(&l.launches, 1)
	if atomic.AddInt32(&l.failures, -1) >= 0 {
		return nil, errors.New("chromium exited")
	}
	l.driver = &fakeDriver{}
	return l.driver, nil
}

func newTestManager(launcher *fakeLauncher, config *Config) *Manager {
	return NewManager(config, WithLauncher(launcher.launch))
}

func TestManager_EnsureReadyLaunchesOnce(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Nil(t, manager.EnsureReady(context.Background()))
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, atomic.LoadInt32(&launcher.launches))
	assert.Equal(t, StatusReady, manager.Status())
}

func TestManager_LaunchFailureRecovers(t *testing.T) {
	launcher := &fakeLauncher{failures: 1}
	manager := newTestManager(launcher, nil)

	_, err := manager.Navigate(context.Background(), "https://example.com", 0)
	assert.NotNil(t, err)
	assert.Equal(t, KindLaunchError, KindOf(err))
	assert.Equal(t, StatusUninitialized, manager.Status())

	title, err := manager.Navigate(context.Background(), "https://example.com", 0)
	assert.Nil(t, err)
	assert.Equal(t, "Example", title)
	assert.Equal(t, StatusReady, manager.Status())
}

func TestManager_CloseThenRelaunch(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	assert.Nil(t, manager.Close(context.Background()))
	assert.Equal(t, StatusClosed, manager.Status())
	assert.True(t, launcher.driver.closed)

	assert.Nil(t, manager.EnsureReady(context.Background()))
	assert.EqualValues(t, 2, atomic.LoadInt32(&launcher.launches))
	assert.Equal(t, StatusReady, manager.Status())
}

func TestManager_CloseWithoutLaunch(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.Close(context.Background()))
	assert.Equal(t, StatusClosed, manager.Status())
	assert.EqualValues(t, 0, atomic.LoadInt32(&launcher.launches))
}

func TestManager_NavigateFailures(t *testing.T) {
	testCases := []struct {
		description string
		gotoErr     error
		expectKind  Kind
	}{
		{
			description: "navigation timeout",
			gotoErr:     errors.New("playwright: timeout 60000ms exceeded"),
			expectKind:  KindTimeout,
		},
		{
			description: "unreachable host",
			gotoErr:     errors.New("net::ERR_NAME_NOT_RESOLVED"),
			expectKind:  KindNavigationError,
		},
	}
	for _, testCase := range testCases {
		launcher := &fakeLauncher{}
		manager := newTestManager(launcher, nil)
		assert.Nil(t, manager.EnsureReady(context.Background()))
		launcher.driver.pages[0].gotoErr = testCase.gotoErr
		_, err := manager.Navigate(context.Background(), "https://example.com", 0)
		assert.NotNil(t, err, testCase.description)
		assert.Equal(t, testCase.expectKind, KindOf(err), testCase.description)
	}
}

func TestManager_ClickMissingElement(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	launcher.driver.pages[0].waitErr["#missing"] = errors.New("timeout 30000ms exceeded waiting for selector")

	err := manager.Click(context.Background(), "#missing", 0)
	assert.NotNil(t, err)
	assert.Equal(t, KindElementNotFound, KindOf(err))

	assert.Nil(t, manager.Click(context.Background(), "#present", 0))
	assert.Equal(t, []string{"#present"}, launcher.driver.pages[0].clicked)
}

func TestManager_WaitForSelectorTimeout(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	launcher.driver.pages[0].waitErr["#late"] = errors.New("timeout 200ms exceeded")

	err := manager.WaitForSelector(context.Background(), "#late", 200)
	assert.NotNil(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
	assert.Contains(t, err.Error(), "#late")

	assert.Nil(t, manager.WaitForSelector(context.Background(), "#early", 200))
}

func TestManager_TypeTextAppends(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.TypeText(context.Background(), "#input", "hello ", 0))
	assert.Nil(t, manager.TypeText(context.Background(), "#input", "world", 0))
	assert.Equal(t, "hello world", launcher.driver.pages[0].typed["#input"])
}

func TestManager_PageContentTruncation(t *testing.T) {
	launcher := &fakeLauncher{}
	config := NewConfig()
	config.MaxContentLength = 10
	manager := newTestManager(launcher, config)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	launcher.driver.pages[0].content = strings.Repeat("x", 50)

	content, err := manager.PageContent(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, strings.Repeat("x", 10)+"... (content truncated)", content)
}

func TestManager_PageContentTruncationKeepsValidUTF8(t *testing.T) {
	launcher := &fakeLauncher{}
	config := NewConfig()
	config.MaxContentLength = 5
	manager := newTestManager(launcher, config)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	launcher.driver.pages[0].content = strings.Repeat("é", 10)

	content, err := manager.PageContent(context.Background())
	assert.Nil(t, err)
	assert.True(t, utf8.ValidString(content))
	assert.Equal(t, "éé... (content truncated)", content)
}

func TestManager_ScreenshotStoresFile(t *testing.T) {
	launcher := &fakeLauncher{}
	config := NewConfig()
	config.OutputURL = fmt.Sprintf("mem://localhost/screenshots/%v", t.Name())
	manager := newTestManager(launcher, config)

	locations := make(chan string, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			location, err := manager.Screenshot(context.Background(), "", false)
			assert.Nil(t, err)
			locations <- location
		}()
	}
	wg.Wait()
	close(locations)
	first, second := <-locations, <-locations
	assert.NotEqual(t, first, second)

	named, err := manager.Screenshot(context.Background(), "../../escape.png", false)
	assert.Nil(t, err)
	assert.Equal(t, config.OutputURL+"/escape.png", named)

	fs := afs.New()
	for _, location := range []string{first, second, named} {
		ok, _ := fs.Exists(context.Background(), location)
		assert.True(t, ok, location)
	}
}

func TestManager_NewTabSwitchesActivePage(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.EnsureReady(context.Background()))

	assert.Nil(t, manager.NewTab(context.Background(), "https://example.com/two"))
	assert.Equal(t, 2, len(launcher.driver.pages))
	assert.False(t, launcher.driver.pages[0].closed)

	content, err := manager.PageContent(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, launcher.driver.pages[1].content, content)
}

func TestManager_NewTabNavigationFailureKeepsActivePage(t *testing.T) {
	launcher := &fakeLauncher{}
	manager := newTestManager(launcher, nil)
	assert.Nil(t, manager.EnsureReady(context.Background()))
	launcher.driver.newPage = func() *fakePage {
		page := newFakePage()
		page.gotoErr = errors.New("net::ERR_CONNECTION_REFUSED")
		return page
	}

	err := manager.NewTab(context.Background(), "https://down.example.com")
	assert.NotNil(t, err)
	assert.Equal(t, KindNavigationError, KindOf(err))
	assert.True(t, launcher.driver.pages[1].closed)

	_, err = manager.PageContent(context.Background())
	assert.Nil(t, err)
}
