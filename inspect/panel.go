package inspect

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/gogpu/polyedit"
)

// Item is one label/text pair of a message panel.
type Item struct {
	Label string
	Text  string
}

const (
	labelLineWidth   = "Line Width"
	labelBoundingBox = "Bounding Box"
	menuText         = "Polyline at (%s, %s) with %d points"
)

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic(err)
		}
	}

	set(language.English, labelLineWidth, labelLineWidth)
	set(language.English, labelBoundingBox, labelBoundingBox)
	set(language.English, menuText, menuText)

	set(language.German, labelLineWidth, "Linienbreite")
	set(language.German, labelBoundingBox, "Begrenzungsrahmen")
	set(language.German, menuText, "Polylinie bei (%s, %s) mit %d Punkten")

	set(language.French, labelLineWidth, "Épaisseur ligne")
	set(language.French, labelBoundingBox, "Boîte d'encadrement")
	set(language.French, menuText, "Polyligne à (%s, %s) avec %d points")
	return b
}

func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// PanelItems returns the status panel entries for a polyline:
// its line width in u and its bounding box in internal units, printed
// without digit grouping in every language.
func PanelItems(info polyedit.Info, u Units, tag language.Tag) []Item {
	p := newPrinter(tag)
	bb := info.BoundingBox
	end := bb.End()
	// Plain integers: grouping separators would read as list commas.
	box := fmt.Sprintf("(%d, %d, %d, %d)", bb.Origin.X, bb.Origin.Y, end.X, end.Y)

	return []Item{
		{
			Label: p.Sprintf(labelLineWidth),
			Text:  formatValue(p, u, info.Width),
		},
		{
			Label: p.Sprintf(labelBoundingBox),
			Text:  box,
		},
	}
}

// SelectMenuText returns the one-line description used when the user picks
// between overlapping items.
func SelectMenuText(info polyedit.Info, u Units, tag language.Tag) string {
	p := newPrinter(tag)
	return p.Sprintf(menuText,
		formatValue(p, u, info.Start.X),
		formatValue(p, u, info.Start.Y),
		info.CornerCount)
}
