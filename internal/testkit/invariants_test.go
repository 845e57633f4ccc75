package testkit_test

import (
	"strings"
	"testing"

	"wgslkit/internal/driver"
	"wgslkit/internal/testkit"
)

func TestCheckTreeInvariantsOnParsedFile(t *testing.T) {
	inputs := []string{
		"fn main() { return; }\n",
		"var x i32;\n", // recovers with an error node
		"",
	}
	for _, input := range inputs {
		res, err := driver.ParseBytes("check.wgsl", []byte(input), 0)
		if err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckTreeInvariants(res.Tree, res.File); err != nil {
			t.Errorf("%q: %v", input, err)
		}
	}
}

func TestCheckTreeInvariantsNilArgs(t *testing.T) {
	err := testkit.CheckTreeInvariants(nil, nil)
	if err == nil || !strings.Contains(err.Error(), "nil") {
		t.Errorf("err = %v", err)
	}
}
