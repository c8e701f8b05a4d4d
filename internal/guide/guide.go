// Package guide renders the manual steps for producing the Quickdrop icon
// files from the browser generator page.
package guide

import (
	"fmt"
	"io"

	"github.com/Mavwarf/quickdrop-iconguide/internal/iconset"
)

// Lines returns the guide, one entry per output line, without newlines.
func Lines() []string {
	assets := iconset.Assets()

	lines := []string{
		"🎨 Creating Quickdrop icons...",
		"📁 Files to create:",
	}
	for _, a := range assets {
		lines = append(lines, fmt.Sprintf("   - %s (%s)", a.File, a.SizeList()))
	}
	lines = append(lines,
		"",
		fmt.Sprintf("🌐 Open %s in your browser to create the actual PNG files!", iconset.GeneratorPage),
		"   1. Open: "+iconset.GeneratorURL(),
		"   2. Right-click each canvas and 'Save image as...'",
		"   3. Save as:",
	)
	for _, a := range assets {
		lines = append(lines, fmt.Sprintf("      - %s -> rename to %s", a.Canvas(), a.File))
	}
	return lines
}

// Write prints the guide to w, stopping at the first write error.
func Write(w io.Writer) error {
	for i, line := range Lines() {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return fmt.Errorf("write guide line %d: %w", i+1, err)
		}
	}
	return nil
}
