package runner

// Options configures the bridge process. Every flag has an environment
// fallback so container deployments need no argument plumbing.
type Options struct {
	Transport           string  `short:"t" long:"transport" description:"transport to serve" choice:"stdio" choice:"sse" default:"stdio" env:"MCP_TRANSPORT"`
	Addr                string  `short:"a" long:"addr" description:"http listen address for the sse transport" default:"0.0.0.0:9000" env:"MCP_ADDR"`
	Headed              bool    `long:"headed" description:"run the browser with a visible window" env:"MCP_HEADED"`
	OutputURL           string  `short:"o" long:"output" description:"screenshot output location" env:"MCP_SCREENSHOT_DIR"`
	ViewportWidth       int     `long:"viewport-width" description:"browser viewport width" env:"MCP_VIEWPORT_WIDTH"`
	ViewportHeight      int     `long:"viewport-height" description:"browser viewport height" env:"MCP_VIEWPORT_HEIGHT"`
	ActionTimeoutMs     float64 `long:"action-timeout" description:"default element action timeout in milliseconds" env:"MCP_ACTION_TIMEOUT_MS"`
	NavigationTimeoutMs float64 `long:"navigation-timeout" description:"default navigation timeout in milliseconds" env:"MCP_NAVIGATION_TIMEOUT_MS"`
	MaxContentLength    int     `long:"max-content" description:"page content truncation threshold in bytes" env:"MCP_MAX_CONTENT_LENGTH"`
	KeepAliveSeconds    int     `long:"keep-alive" description:"sse heartbeat interval in seconds" default:"10" env:"MCP_KEEP_ALIVE_SECONDS"`
	SkipInstall         bool    `long:"skip-install" description:"skip provisioning the browser runtime on startup" env:"MCP_SKIP_INSTALL"`
}
