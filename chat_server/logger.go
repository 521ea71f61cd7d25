package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// setupLogging mirrors everything the server logs into a timestamped
// file under logs/ alongside the console.
func setupLogging() (*os.File, error) {
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return nil, err
	}

	name := filepath.Join("logs", time.Now().Format("15-04_02-01-2006")+".txt")
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, logFile))
	return logFile, nil
}
