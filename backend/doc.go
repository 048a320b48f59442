// Package backend provides a pluggable output abstraction for polyedit.
//
// Each output implements polyedit.Backend, so a polyline renders into it
// with Polyline.Render, and encodes the finished document to a writer.
//
// # Output Registration
//
// Outputs are registered via init() functions and selected by name at
// runtime. Importing an output package registers it:
//
//	import (
//		_ "github.com/gogpu/polyedit/backend/ggraster" // "png"
//		_ "github.com/gogpu/polyedit/backend/svgplot"  // "svg"
//	)
//
// # Usage
//
//	out, err := backend.Get("svg", backend.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := p.Render(out, polyedit.RenderOptions{AllowFill: true}); err != nil {
//		log.Fatal(err)
//	}
//	if err := out.Encode(w); err != nil {
//		log.Fatal(err)
//	}
package backend
