package main

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/iburimskiy/neural-canvas/internal/config"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	defer log.SetOutput(log.Writer())

	setupLogging(false)
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	prev := log.Writer()
	defer func() {
		log.SetOutput(prev)
		log.SetPrefix("")
		log.SetFlags(log.LstdFlags)
	}()

	setupLogging(true)
	if log.Prefix() != config.LogPrefix {
		t.Fatalf("Expected prefix %q, got %q", config.LogPrefix, log.Prefix())
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.Println("view home -> engine")
	if !strings.Contains(buf.String(), config.LogPrefix) {
		t.Errorf("Expected log line to carry prefix, got %q", buf.String())
	}
}

func TestViewKeysCoverEveryView(t *testing.T) {
	seen := map[string]bool{}
	for _, v := range viewKeys {
		seen[string(v)] = true
	}
	if len(seen) != 5 {
		t.Fatalf("Expected 5 distinct views on number keys, got %d", len(seen))
	}
}
