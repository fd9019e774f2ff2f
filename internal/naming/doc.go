// Package naming provides the word-splitting and casing primitives shared by
// the casekit transforms.
//
// The transform package composes these into the public case conversions:
//   - SplitWords: separator and camel-hump splitting for camelCase and PascalCase
//   - SplitCapital: boundary splitting for CapitalCase
//   - Delimit: the insert/replace/strip/collapse/trim pipeline behind
//     snake_case, kebab-case and slugs
//   - Lower, Upper, CapitalizeWord: full Unicode case mapping via golang.org/x/text
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
