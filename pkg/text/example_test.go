package text_test

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/walteh/syncopy/pkg/text"
)

func ExampleTokenReplacer() {
	r := text.NewTokenReplacer(regexp.MustCompile(`syn[0-9]+`))

	result, err := r.ReplaceText(context.Background(), strings.NewReader("syn1 links to syn12"), []text.ReplacementRule{
		{FromText: "syn1", ToText: "syn9"},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(string(result.ModifiedContent))
	fmt.Println(result.ReplacementCount)
	// Output:
	// syn9 links to syn12
	// 1
}
