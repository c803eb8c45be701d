package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	log "github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Server  ServerCmd  `command:"server" description:"run gallery UI server"`
	Reset   ResetCmd   `command:"reset" description:"forget stored preferences"`
	Palette PaletteCmd `command:"palette" description:"verify a palette file or print its schema"`

	Version bool `long:"version" description:"show version and exit"`
}

var revision = "unknown"

func main() {
	fmt.Printf("galleryui %s\n", revision)
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args and executes the selected subcommand, returning the process exit code:
// 0 on success or --version, 1 on a parse or command error, 2 when help was shown.
func run(args []string, stderr io.Writer) int {
	var opts options
	p := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	p.SubcommandsOptional = true

	if _, err := p.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			p.WriteHelp(stderr)
			return 2
		}
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	switch {
	case opts.Version:
		return 0
	case p.Active == nil:
		p.WriteHelp(stderr)
		return 2
	}
	return 0
}

// validateBaseURL checks the base URL path and strips the trailing slash.
// Empty string and "/" mean no base URL.
func validateBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" || baseURL == "/" {
		return "", nil
	}
	if strings.Contains(baseURL, "://") || strings.ContainsAny(baseURL, "?#") {
		return "", fmt.Errorf("base URL must be a path, got %q", baseURL)
	}
	if !strings.HasPrefix(baseURL, "/") {
		return "", fmt.Errorf("base URL must start with /, got %q", baseURL)
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if strings.Contains(baseURL, "//") {
		return "", fmt.Errorf("base URL has empty path segment: %q", baseURL)
	}
	return baseURL, nil
}

func setupLogs(debug bool) io.Writer {
	log.Setup(log.Msec)
	if debug {
		log.Setup(log.Debug, log.CallerFunc, log.CallerPkg, log.CallerFile)
	}
	return os.Stdout
}

func signals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	go func() {
		stacktrace := make([]byte, 8192)
		for sig := range sigChan {
			switch sig {
			case syscall.SIGQUIT:
				length := runtime.Stack(stacktrace, true)
				fmt.Println(string(stacktrace[:length]))
			case syscall.SIGTERM, syscall.SIGINT:
				cancel()
			}
		}
	}()
	signal.Notify(sigChan, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
}
