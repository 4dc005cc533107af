package paramskema_test

import (
	"fmt"
	"strings"

	paramskema "github.com/reoring/paramskema"
)

func ExampleFor() {
	s, _ := paramskema.For[int8]()
	out, _ := paramskema.EncodeJSON(s)
	fmt.Println(string(out))
	// Output: {"type":"integer","minimum":-128,"maximum":127}
}

func ExampleWithTagModifier() {
	s, _ := paramskema.For[suit](paramskema.WithTagModifier(strings.ToLower))
	out, _ := paramskema.EncodeJSON(s)
	fmt.Println(string(out))
	// Output: {"type":"string","enum":["hearts","clubs"]}
}
