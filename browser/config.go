package browser

// DefaultLaunchArgs is the hardened chromium flag set used for headless
// operation in constrained environments (containers, CI).
var DefaultLaunchArgs = []string{
	"--no-sandbox",
	"--disable-setuid-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
	"--disable-extensions",
	"--disable-background-timer-throttling",
	"--disable-backgrounding-occluded-windows",
	"--disable-renderer-backgrounding",
	"--disable-features=TranslateUI",
	"--disable-web-security",
	"--no-first-run",
	"--disable-default-apps",
}

const (
	defaultActionTimeoutMs     = 30000.0
	defaultNavigationTimeoutMs = 60000.0
	defaultViewportWidth       = 1280
	defaultViewportHeight      = 720
	defaultMaxContentLength    = 5000
	defaultOutputURL           = "/tmp/playwright-mcp/screenshots"
)

// Config holds session settings, immutable once the manager is created.
type Config struct {
	// Headless controls whether the browser runs without a visible window.
	Headless bool
	// LaunchArgs are passed to the chromium launcher.
	LaunchArgs []string
	// ViewportWidth and ViewportHeight size the browser context viewport.
	ViewportWidth  int
	ViewportHeight int
	// ActionTimeoutMs bounds selector-based actions, in milliseconds.
	ActionTimeoutMs float64
	// NavigationTimeoutMs bounds page navigation, in milliseconds.
	NavigationTimeoutMs float64
	// OutputURL is the afs location screenshots are written to.
	OutputURL string
	// MaxContentLength caps get_page_content payloads, in characters.
	MaxContentLength int
}

// Init fills zero-valued settings with defaults.
func (c *Config) Init() {
	if c.LaunchArgs == nil {
		c.LaunchArgs = DefaultLaunchArgs
	}
	if c.ViewportWidth == 0 {
		c.ViewportWidth = defaultViewportWidth
	}
	if c.ViewportHeight == 0 {
		c.ViewportHeight = defaultViewportHeight
	}
	if c.ActionTimeoutMs == 0 {
		c.ActionTimeoutMs = defaultActionTimeoutMs
	}
	if c.NavigationTimeoutMs == 0 {
		c.NavigationTimeoutMs = defaultNavigationTimeoutMs
	}
	if c.OutputURL == "" {
		c.OutputURL = defaultOutputURL
	}
	if c.MaxContentLength == 0 {
		c.MaxContentLength = defaultMaxContentLength
	}
}

// NewConfig returns an initialized headless configuration.
func NewConfig() *Config {
	ret := &Config{Headless: true}
	ret.Init()
	return ret
}
