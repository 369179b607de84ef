package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/oukeidos/picsq/internal/logger"
)

var supportedOutputExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
}

const supportedOutputExtensionsLabel = ".jpg, .jpeg"

func validateOutputExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := supportedOutputExtensions[ext]; ok {
		return nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("unsupported output extension %q (supported: %s)", ext, supportedOutputExtensionsLabel)
}

func signalContext() (context.Context, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Warn("Cancellation requested")
		cancel()
	}()
	stop := func() {
		signal.Stop(sigCh)
		cancel()
	}
	return ctx, stop
}
