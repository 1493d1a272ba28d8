// Package parse parses OTML text into IR nodes.
//
// # Usage
//
//	root := parse.ParseString("MainWindow\n  size: 200 120\n")
//
//	// with options
//	var diags []parse.Diagnostic
//	root := parse.Parse(d, parse.Indent(4), parse.Diagnostics(&diags))
//
// Parse is a total function: it never fails, for any input. Malformed
// indentation degrades by flooring the computed depth; callers that
// want to surface it use the Diagnostics option.
//
// # Related Packages
//
//   - github.com/otml-format/go-otml/ir - IR representation
//   - github.com/otml-format/go-otml/encode - Encode IR to text
package parse
