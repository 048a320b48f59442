// Package inspect turns the raw numbers of a polyline into the text shown in
// a status panel or a selection menu.
//
// The polyedit package works in integer mils. This package converts those
// values into the user's display units and formats them for a language:
//
//	items := inspect.PanelItems(poly.Info(), inspect.Millimetres, language.German)
//	for _, it := range items {
//		fmt.Println(it.Label, it.Text)
//	}
//
// Labels are translated through a message catalog; numbers follow the
// language's decimal and grouping conventions.
package inspect
