package launcher_test

import (
	"fmt"
	"os"

	"github.com/erraggy/casekit/launcher"
)

func ExampleProcess() {
	resp := launcher.Process("Hello World /cS")
	item := resp.Items[0]
	fmt.Println(item.UID, item.Arg, item.Subtitle)
	// Output: chained hello-world camelCase→slugify
}

func ExampleResponse_WriteJSON() {
	_ = launcher.Process("my file /F 'txt'").WriteJSON(os.Stdout)
	// Output: {"items":[{"uid":"chained","title":"my-file.txt","subtitle":"file-name","arg":"my-file.txt","icon":{"path":"./icons/chained.png"}}]}
}

func ExampleProcessWithOptions() {
	resp, err := launcher.ProcessWithOptions(
		launcher.WithQuery("foo bar"),
		launcher.WithIconDir("assets"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, item := range resp.Items[:3] {
		fmt.Printf("%s %q %s\n", item.UID, item.Arg, item.Icon.Path)
	}
	// Output:
	// lowercase "foo bar" assets/lowercase.png
	// uppercase "FOO BAR" assets/UPPERCASE.png
	// camelcase "fooBar" assets/camelCase.png
}
