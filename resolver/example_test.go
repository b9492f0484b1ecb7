package resolver_test

import (
	"errors"
	"fmt"
	"strings"

	"map-resolver/resolver"
)

func Example() {
	r := resolver.New(resolver.DefaultConfig())
	r.SetDefaults(map[string]any{"one": 1, "two": 2})

	resolved, _ := r.Resolve(map[string]any{"one": 5})
	fmt.Println(resolved)
	// Output:
	// map[one:5 two:2]
}

func Example_strict() {
	r := resolver.New(resolver.DefaultConfig())
	r.SetRequired("one")

	_, err := r.Resolve(map[string]any{"two": 3})
	fmt.Println(err)
	fmt.Println(errors.Is(err, resolver.ErrInvalidMap))
	// Output:
	// Key(s) "two" are not known, known keys: "one"
	// true
}

func Example_lenient() {
	cfg := resolver.DefaultConfig()
	cfg.IgnoreErrors = true

	r := resolver.New(cfg)
	r.SetDefaults(map[string]any{"one": 1, "two": 2})

	resolved, err := r.Resolve(map[string]any{"three": 3})
	fmt.Println(resolved, err)
	fmt.Println(r.Errors().Len())
	// Output:
	// map[one:1 two:2] <nil>
	// 1
}

func ExampleResolver_SetCallback() {
	r := resolver.New(resolver.DefaultConfig())
	r.SetDefaults(map[string]any{"name": "World", "greeting": ""})
	r.SetCallback("greeting", func(m map[string]any) any {
		return "Hello, " + strings.ToUpper(m["name"].(string))
	})

	resolved, _ := r.Resolve(nil)
	fmt.Println(resolved["greeting"])
	// Output:
	// Hello, WORLD
}

func ExampleResolver_Definitions() {
	r := resolver.New(resolver.DefaultConfig())
	r.SetDefaults(map[string]any{"host": "localhost"})
	r.SetRequired("port")
	r.SetTypes(map[string]string{"port": "int"})
	r.SetDescriptions(map[string]string{"port": "Port to listen on"})

	for d := range r.Definitions().Each() {
		fmt.Printf("%s default=%v required=%t types=%v %q\n",
			d.Name(), d.Default(), d.Required(), d.Types(), d.Description())
	}
	// Output:
	// host default=localhost required=false types=[] ""
	// port default=<nil> required=true types=[int] "Port to listen on"
}
