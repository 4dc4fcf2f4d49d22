package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

const surfacePattern = "github.com/coinbase/cb-mlkem-go/pkg/mlkem/..."

// loadSurface returns the non-test packages of the ML-KEM surface.
func loadSurface(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, surfacePattern)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages under %s failed to type-check", surfacePattern)
	}
	if len(pkgs) == 0 {
		t.Fatalf("no packages matched %s", surfacePattern)
	}
	return pkgs
}
