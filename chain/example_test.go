package chain_test

import (
	"fmt"
	"strings"

	"github.com/erraggy/casekit/chain"
)

func ExampleSplit() {
	subject, suffix, ok := chain.Split("a /b /c")
	fmt.Printf("%q %q %v\n", subject, suffix, ok)
	// Output: "a /b" "c" true
}

func ExampleRun() {
	subject, cmds := chain.ParseQuery("Hello World /cS")
	res, err := chain.Run(subject, cmds)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Value)
	fmt.Println(strings.Join(res.Path, "→"))
	// Output:
	// hello-world
	// camelCase→slugify
}

func ExampleRun_error() {
	_, err := chain.Run("100%", chain.Parse("d"))
	fmt.Println(err)
	// Output: transform error in decode-uri (/d at position 0): uri decode error at offset 3: malformed escape sequence
}
