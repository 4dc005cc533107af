package main

import (
	"flag"
	"fmt"
	"os"

	paramskema "github.com/reoring/paramskema"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "catalog":
		catalogCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "paramskema CLI\n\nUsage:\n  paramskema catalog [-format json|yaml]\n\nNotes:\n  - catalog prints the builtin primitive catalog for documentation tooling.")
}

func catalogCmd(args []string) {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	for _, e := range paramskema.BuiltinEntries() {
		var (
			out []byte
			err error
		)
		switch format {
		case "yaml":
			out, err = paramskema.EncodeYAML(e.Schema)
		case "json":
			out, err = paramskema.EncodeJSONIndent(e.Schema)
		default:
			fatalf("unknown format %q", format)
		}
		if err != nil {
			fatalf("encode %s: %v", e.Name, err)
		}
		if format == "yaml" {
			fmt.Printf("# %s\n%s---\n", e.Name, out)
		} else {
			fmt.Printf("// %s\n%s\n", e.Name, out)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
