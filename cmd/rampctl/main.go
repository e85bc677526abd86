package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/rampctl/internal/label"
	"github.com/danmuck/rampctl/internal/ramp"
	"github.com/danmuck/rampctl/internal/ramp/registry"
)

func main() {
	uriOut := flag.Bool("uri", false, "print the ramp:// URI form")
	textOut := flag.Bool("label", false, "print a descriptive text label")
	boxOut := flag.Bool("box", false, "print a boxed label")
	extPath := flag.String("extensions", "", "optional registry extension TOML")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: rampctl [-uri|-label|-box] [-extensions file] <ramp-string>")
		os.Exit(2)
	}
	raw := flag.Arg(0)

	reg := registry.Builtin()
	if *extPath != "" {
		ext, err := registry.LoadExtensions(*extPath)
		if err == nil {
			reg, err = reg.WithExtensions(ext)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "rampctl: %v\n", err)
			os.Exit(1)
		}
	}

	var addr ramp.Address
	var err error
	if strings.HasPrefix(raw, "ramp://") {
		addr, err = ramp.ParseURI(raw, reg)
	} else {
		addr, err = ramp.Parse(raw, reg)
	}
	if err != nil {
		reportParseError(err)
		os.Exit(1)
	}

	switch {
	case *boxOut:
		fmt.Println(label.Box(reg, addr))
	case *textOut:
		fmt.Println(label.Text(reg, addr))
	case *uriOut:
		fmt.Println(ramp.URI(addr))
	default:
		fmt.Println(ramp.Canonical(addr))
	}
}

func reportParseError(err error) {
	var syn *ramp.SyntaxError
	if errors.As(err, &syn) {
		fmt.Fprintf(os.Stderr, "rampctl: syntax error at offset %d: %s\n", syn.Pos, syn.Reason)
		return
	}
	var val *ramp.ValidationError
	if errors.As(err, &val) {
		fmt.Fprintln(os.Stderr, "rampctl: invalid address:")
		for _, v := range val.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "rampctl: %v\n", err)
}
