// Package transform provides the casekit transform set and its registry.
//
// Each transform is a pure string function. The zero-argument transforms
// convert between case styles:
//
//	transform.ToCamelCase("foo_bar-baz")       // "fooBarBaz"
//	transform.ToSnakeCase("Hello World-Test")  // "hello_world_test"
//	transform.ToKebabCase("fooBarBAZ")         // "foo-bar-baz"
//
// The argument-taking transforms accept quoted literals when used in a command
// chain and fall back to their own defaults when a literal is omitted:
//
//	transform.ToSlug("Hello World!!", "_")     // "hello_world"
//	transform.ToReplaced("a.b.c", ".", "-")    // "a-b-c"
//	transform.ToFilename("My Report", "txt")   // "my-report.txt"
//
// # Registry
//
// Every transform is registered under a single-character key in a fixed,
// ordered table built at package initialization. [All] returns the table in
// registry order, which is also the order of the launcher's default results;
// [Lookup] resolves a key. The table is never mutated after init and is safe
// for concurrent use.
//
//	spec, ok := transform.Lookup('S')
//	out, err := spec.Apply("Hello World", []string{"_"}) // "hello_world"
//
// Only the URI transforms can fail; they return a *caseerrors.URIError.
package transform
