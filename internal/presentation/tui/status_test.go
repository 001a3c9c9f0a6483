package tui_test

import (
	"bytes"
	"testing"

	"github.com/plin1112/mcell/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
)

func TestStatus_PlainWriter(t *testing.T) {
	var buf bytes.Buffer
	tui.Success(&buf, "scene %s is valid", "cell.yaml")
	tui.Failure(&buf, "failed: %d errors", 2)
	tui.Warning(&buf, "careful")

	// A bytes.Buffer is not a terminal, so no escape codes are emitted.
	assert.Equal(t, "scene cell.yaml is valid\nfailed: 2 errors\ncareful\n", buf.String())
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "0.1.0")
	assert.Contains(t, buf.String(), "v0.1.0")
	assert.NotContains(t, buf.String(), "\x1b[")
}
