// Package runner wires the browser session, tool catalog and transports
// into a runnable bridge process.
package runner

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/viant/mcp-protocol/schema"

	playwrightmcp "github.com/autobrowse/playwright-mcp"
	"github.com/autobrowse/playwright-mcp/browser"
	"github.com/autobrowse/playwright-mcp/server"
	"github.com/autobrowse/playwright-mcp/tool"
)

func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}
	if !options.SkipInstall {
		if err := browser.Install(); err != nil {
			return err
		}
	}
	ctx := context.Background()

	manager := browser.NewManager(newConfig(options))
	defer manager.Close(ctx)

	registry, err := tool.NewCatalog(manager)
	if err != nil {
		return err
	}
	srv, err := server.New(
		server.WithRegistry(registry),
		server.WithImplementation(schema.Implementation{
			Name:    playwrightmcp.Name,
			Version: playwrightmcp.Version,
		}),
		server.WithKeepAliveInterval(time.Duration(options.KeepAliveSeconds)*time.Second),
	)
	if err != nil {
		return err
	}

	switch options.Transport {
	case "sse":
		return serveHTTP(ctx, srv, options.Addr)
	default:
		return srv.Stdio(ctx).ListenAndServe()
	}
}

func serveHTTP(ctx context.Context, srv *server.Server, addr string) error {
	httpServer := srv.HTTP(ctx, addr)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()
	log.Printf("serving MCP over HTTP at %v", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newConfig(options *Options) *browser.Config {
	config := browser.NewConfig()
	config.Headless = !options.Headed
	if options.OutputURL != "" {
		config.OutputURL = options.OutputURL
	}
	if options.ViewportWidth > 0 {
		config.ViewportWidth = options.ViewportWidth
	}
	if options.ViewportHeight > 0 {
		config.ViewportHeight = options.ViewportHeight
	}
	if options.ActionTimeoutMs > 0 {
		config.ActionTimeoutMs = options.ActionTimeoutMs
	}
	if options.NavigationTimeoutMs > 0 {
		config.NavigationTimeoutMs = options.NavigationTimeoutMs
	}
	if options.MaxContentLength > 0 {
		config.MaxContentLength = options.MaxContentLength
	}
	return config
}
