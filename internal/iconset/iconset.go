// Package iconset lists the Quickdrop icon files the frontend ships and the
// generator page that produces them.
package iconset

import (
	"fmt"
	"strings"
)

const (
	// GeneratorPage is served from frontend/public by the dev server.
	GeneratorPage = "generate-icons.html"

	// DevServer is the frontend dev server origin.
	DevServer = "http://localhost:3000"
)

// Asset is one file in frontend/public and the square pixel sizes it covers.
type Asset struct {
	File  string
	Sizes []int
}

var assets = []Asset{
	{File: "favicon.ico", Sizes: []int{16, 32}},
	{File: "logo192.png", Sizes: []int{192}},
	{File: "logo512.png", Sizes: []int{512}},
}

// Assets returns the icon manifest in display order. The result is a copy.
func Assets() []Asset {
	out := make([]Asset, len(assets))
	for i, a := range assets {
		out[i] = Asset{File: a.File, Sizes: append([]int(nil), a.Sizes...)}
	}
	return out
}

// Canvas returns the download name the generator page offers for the
// asset's first size, e.g. "quickdrop-16x16.png". It is empty for an asset
// without sizes; every manifest entry has at least one.
func (a Asset) Canvas() string {
	if len(a.Sizes) == 0 {
		return ""
	}
	n := a.Sizes[0]
	return fmt.Sprintf("quickdrop-%dx%d.png", n, n)
}

// SizeList formats the sizes as "16x16, 32x32".
func (a Asset) SizeList() string {
	parts := make([]string, len(a.Sizes))
	for i, n := range a.Sizes {
		parts[i] = fmt.Sprintf("%dx%d", n, n)
	}
	return strings.Join(parts, ", ")
}

// GeneratorURL is where the generator page is reachable during development.
func GeneratorURL() string {
	return DevServer + "/" + GeneratorPage
}
