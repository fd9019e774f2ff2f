// Package launcher turns a launcher query into the result list a launcher
// host displays.
//
// A query either names a command chain (see package chain), which yields a
// single "chained" item, or it does not, in which case every registered
// transform is applied to the subject and one item per transform is returned
// in registry order.
//
// # Quick Start
//
//	resp := launcher.Process("Hello World /cS")
//	_ = resp.WriteJSON(os.Stdout)
//	// {"items":[{"uid":"chained","title":"hello-world","subtitle":"camelCase→slugify",
//	//   "arg":"hello-world","icon":{"path":"./icons/chained.png"}}]}
//
// Use ProcessWithOptions to change the icon directory or the title shown for
// multi-line values:
//
//	resp, err := launcher.ProcessWithOptions(
//		launcher.WithQuery("foo bar"),
//		launcher.WithIconDir("/opt/casekit/icons"),
//	)
//
// # Errors
//
// Process never fails. A transform error in a chain produces a single item
// titled "Error" whose arg is the untouched subject; in default mode only the
// failing transform is replaced by an invalid placeholder item.
package launcher
