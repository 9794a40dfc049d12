package cyd

import (
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// selectedFiles lists the non-test Go files of package selected that the
// toolchain would compile with the given tags.
func selectedFiles(t *testing.T, tags ...string) []string {
	t.Helper()
	ctx := build.Default
	ctx.BuildTags = tags
	ctx.GOOS, ctx.GOARCH = "linux", "amd64"
	pkg, err := ctx.ImportDir("selected", 0)
	if err != nil {
		t.Fatalf("tags %v: %v", tags, err)
	}
	files := append([]string(nil), pkg.GoFiles...)
	sort.Strings(files)
	return files
}

// undefinedRefs returns identifiers used at package level in file that are
// not declared anywhere in it. Each is a compile error in an otherwise
// empty package.
func undefinedRefs(t *testing.T, file string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), filepath.Join("selected", file), nil, 0)
	if err != nil {
		t.Fatalf("parse %s: %v", file, err)
	}
	var refs []string
	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gd.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, v := range vs.Values {
				if id, ok := v.(*ast.Ident); ok && f.Scope.Lookup(id.Name) == nil {
					refs = append(refs, id.Name)
				}
			}
		}
	}
	return refs
}

func TestBuildFlagMissingFailsWithDiagnostic(t *testing.T) {
	files := selectedFiles(t)
	if len(files) != 2 || files[0] != "doc.go" || files[1] != "variant_none.go" {
		t.Fatalf("without tags got %v, want [doc.go variant_none.go]", files)
	}
	refs := undefinedRefs(t, "variant_none.go")
	if len(refs) != 1 || !strings.HasPrefix(refs[0], "DISPLAY_CYD_2USB_should_be_defined") ||
		!strings.Contains(refs[0], "cyd_1usb") || !strings.Contains(refs[0], "cyd_2usb") {
		t.Fatalf("diagnostic identifier %v does not name the flag and tags", refs)
	}
}

func TestBuildFlagBothTagsFail(t *testing.T) {
	files := selectedFiles(t, "cyd_1usb", "cyd_2usb")
	if len(files) != 2 || files[1] != "variant_both.go" {
		t.Fatalf("with both tags got %v", files)
	}
	if refs := undefinedRefs(t, "variant_both.go"); len(refs) != 1 || !strings.Contains(refs[0], "mutually_exclusive") {
		t.Fatalf("diagnostic identifier %v", refs)
	}
}

func TestBuildFlagSelectsOneVariant(t *testing.T) {
	for tag, variantFile := range map[string]string{
		"cyd_1usb": "variant_1usb.go",
		"cyd_2usb": "variant_2usb.go",
	} {
		files := selectedFiles(t, tag)
		want := []string{"doc.go", "selected.go", variantFile}
		if strings.Join(files, ",") != strings.Join(want, ",") {
			t.Fatalf("tag %s: got %v, want %v", tag, files, want)
		}
	}
}
