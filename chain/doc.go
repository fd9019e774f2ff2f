// Package chain parses and runs casekit command chains.
//
// A query has the form
//
//	<subject> /<cmd1><cmd2>...
//
// where the LAST occurrence of " /" separates the subject from the command
// suffix. Each command is a single registered key, optionally followed by
// quoted literals for the argument-taking transforms:
//
//	Hello World /cS            camelCase, then slugify with the default "-"
//	a.b.c /R '.' '-'           replace "." with "-"
//	My Report /F 'txt'         file-name with extension "txt"
//
// Characters in the suffix that do not form a command are skipped, so "/cZ"
// runs the same chain as "/c". A suffix without a single command leaves the
// caller in default mode.
//
// # Usage
//
//	subject, cmds := chain.ParseQuery("Hello World /cS")
//	res, err := chain.Run(subject, cmds)
//	if err != nil {
//		// err is a *caseerrors.TransformError
//	}
//	fmt.Println(res.Value)                    // hello-world
//	fmt.Println(strings.Join(res.Path, "→"))  // camelCase→slugify
//
// The compiled command pattern is built once from the transform registry and
// only read afterwards; every function in this package is safe for concurrent
// use.
package chain
