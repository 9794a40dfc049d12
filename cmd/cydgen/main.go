// cmd/cydgen/main.go
//
// cydgen renders the CYD board configuration for the C++ display libraries
// and checks it against the ESP32.
//
//	cydgen [-variant 1usb|2usb|both] [-o dir] tftespi|lgfx|check|report
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cyd-go/board"
	"cyd-go/board/cyd"
	"cyd-go/board/cyd/lgfx"
	"cyd-go/board/cyd/tftespi"
	"cyd-go/x/strx"
)

const (
	tftespiFile = "User_Setup.h"
	lgfxFile    = "LGFX_ESP32_2432S028R_CYD.hpp"
)

func main() {
	variant := flag.String("variant", "both", "1usb, 2usb or both")
	outDir := flag.String("o", "", "output directory (default $CYDGEN_OUT, else stdout)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: cydgen [-variant 1usb|2usb|both] [-o dir] tftespi|lgfx|check|report")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	vs, err := variants(strx.Coalesce(*variant, "both"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "cydgen:", err)
		os.Exit(2)
	}

	code, err := run(flag.Arg(0), vs, strx.Coalesce(*outDir, os.Getenv("CYDGEN_OUT")), os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cydgen:", err)
	}
	os.Exit(code)
}

func variants(s string) ([]cyd.Variant, error) {
	if s == "both" {
		return cyd.Variants, nil
	}
	v, err := cyd.ParseVariant(s)
	if err != nil {
		return nil, err
	}
	return []cyd.Variant{v}, nil
}

// run executes cmd and returns the process exit code. Output goes to
// files under dir, or to stdout when dir is empty.
func run(cmd string, vs []cyd.Variant, dir string, stdout io.Writer) (int, error) {
	switch cmd {
	case "tftespi":
		// Each header carries both variants; only the DISPLAY_CYD_2USB default differs.
		// stdout gets a single header defaulting to the first variant.
		if dir == "" {
			vs = vs[:1]
		}
		for _, v := range vs {
			name := tftespiFile
			if len(vs) > 1 {
				name = "User_Setup_" + v.String() + ".h"
			}
			if err := emit(dir, name, stdout, func(w io.Writer) error {
				return tftespi.WriteHeader(w, v)
			}); err != nil {
				return 1, err
			}
		}
		return 0, nil
	case "lgfx":
		fn := lgfx.WriteHeader
		if len(vs) == 1 {
			d := cyd.New(vs[0])
			fn = func(w io.Writer) error { return lgfx.WriteClass(w, d) }
		}
		if err := emit(dir, lgfxFile, stdout, fn); err != nil {
			return 1, err
		}
		return 0, nil
	case "report":
		if dir == "" && len(vs) > 1 {
			return 2, errors.New("report for both variants needs -o; or pick one with -variant")
		}
		for _, v := range vs {
			name := "report_" + v.String() + ".txt"
			if err := emit(dir, name, stdout, func(w io.Writer) error {
				return cyd.WriteReport(w, cyd.New(v))
			}); err != nil {
				return 1, err
			}
		}
		return 0, nil
	case "check":
		return check(stdout, vs), nil
	}
	return 2, fmt.Errorf("unknown command %q", cmd)
}

func check(w io.Writer, vs []cyd.Variant) int {
	code := 0
	for _, v := range vs {
		errs := cyd.Check(cyd.New(v), board.ESP32)
		if len(errs) == 0 {
			fmt.Fprintf(w, "%s: ok\n", v)
			continue
		}
		code = 1
		for _, err := range errs {
			fmt.Fprintf(w, "%s: %v\n", v, err)
		}
	}
	return code
}

// emit writes through fn to dir/name, or to stdout when dir is empty.
func emit(dir, name string, stdout io.Writer, fn func(io.Writer) error) error {
	if dir == "" {
		return fn(stdout)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "wrote", path)
	return nil
}
