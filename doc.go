// Package casekit converts strings between case styles and runs short
// transformation chains for application launchers.
//
// # Overview
//
// A launcher host sends casekit a single query string and gets back a list of
// result items. The library is split into three packages:
//
//   - transform: the transform set (camelCase, snake_case, slugs, URI
//     encoding and more) and its ordered registry
//   - chain: splitting a query into subject and command suffix, parsing the
//     suffix and folding the subject through the commands
//   - launcher: building the result items and their JSON document
//
// # Quick Start
//
// Apply every transform to a subject:
//
//	resp := launcher.Process("user profile")
//	for _, item := range resp.Items {
//		fmt.Println(item.Subtitle, "=>", item.Arg)
//	}
//
// Run a chain (camelCase, then slugify):
//
//	resp := launcher.Process("Hello World /cS")
//	fmt.Println(resp.Items[0].Arg) // hello-world
//
// Call a transform directly:
//
//	transform.ToSnakeCase("Hello World-Test") // hello_world_test
//
// # Command Keys
//
//	l lowercase     u UPPERCASE     c camelCase     p PascalCase
//	s snake_case    k kebab-case    t Trim          a Capitalize
//	b CapitalCase   d decode-uri    e encode-uri
//	S slugify   /S '<separator>'
//	R replace   /R '<substring>' '<replacement>'
//	F file-name /F '<filename>' '<extension?>'
//
// # Command-Line Tool
//
// The casekit command (cmd/casekit) exposes the same functionality:
//
//	casekit run 'Hello World /cS'      # launcher JSON on stdout
//	casekit convert -c cS 'Hello World'
//	casekit list
//	casekit mcp                        # MCP server over stdio
//
// # Errors
//
// Errors are typed and live in package caseerrors; match them with
// errors.Is against ErrTransform, ErrURI, ErrConfig or ErrResourceLimit.
package casekit
