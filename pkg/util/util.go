// Package util holds small shared helpers for the command binaries.
package util

import (
	"log"
	"os"
)

// InitLog redirects the standard logger to a file. The TUI owns the
// terminal, so logging to stdout is not an option.
func InitLog(dest, prefix string) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	log.SetOutput(f)
	log.SetPrefix(prefix)
}
