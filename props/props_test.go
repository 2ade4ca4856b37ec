package props

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeProperties(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.properties")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write properties file: %v", err)
	}
	return path
}

func TestFile_Get(t *testing.T) {
	path := writeProperties(t, `
quarkus.package.type=uber-jar
quarkus.native.container-build=true
empty=
`)
	src := &File{Path: path}

	v, ok := src.Get("quarkus.package.type")
	if !ok {
		t.Fatal("expected quarkus.package.type to be present")
	}
	if v != "uber-jar" {
		t.Errorf("expected %q, got %q", "uber-jar", v)
	}
}

func TestFile_EmptyValueIsPresent(t *testing.T) {
	path := writeProperties(t, "empty=\n")
	src := &File{Path: path}

	v, ok := src.Get("empty")
	if !ok {
		t.Fatal("empty value should still be present")
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}

func TestFile_AbsentKey(t *testing.T) {
	path := writeProperties(t, "quarkus.package.type=native\n")
	src := &File{Path: path}

	if _, ok := src.Get("quarkus.native.builder-image"); ok {
		t.Error("absent key should report ok=false")
	}
}

func TestFile_MissingFileIsAbsence(t *testing.T) {
	src := &File{Path: filepath.Join(t.TempDir(), "does-not-exist.properties")}

	if _, ok := src.Get("quarkus.package.type"); ok {
		t.Error("missing file should behave like an empty one")
	}
}

func TestFile_ReferencesStayLiteral(t *testing.T) {
	path := writeProperties(t, "base=target\nout=${base}/app\n")
	src := &File{Path: path}

	v, ok := src.Get("out")
	if !ok {
		t.Fatal("expected out to be present")
	}
	if v != "${base}/app" {
		t.Errorf("references must not be expanded, got %q", v)
	}
}

func TestRequire_Present(t *testing.T) {
	src := Map{"quarkus.package.type": "native"}

	v, err := Require(src, "quarkus.package.type")
	if err != nil {
		t.Fatalf("Require() error = %v", err)
	}
	if v != "native" {
		t.Errorf("expected %q, got %q", "native", v)
	}
}

func TestRequire_Missing(t *testing.T) {
	src := Map{}

	_, err := Require(src, "quarkus.package.type")
	if err == nil {
		t.Fatal("expected error for missing key")
	}
	if !errors.Is(err, ErrKeyMissing) {
		t.Errorf("error should wrap ErrKeyMissing, got %v", err)
	}

	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingKeyError, got %T", err)
	}
	if missing.Key != "quarkus.package.type" {
		t.Errorf("error should carry the key name, got %q", missing.Key)
	}
}

func TestRequire_EmptyValueIsNotMissing(t *testing.T) {
	src := Map{"quarkus.native.builder-image": ""}

	v, err := Require(src, "quarkus.native.builder-image")
	if err != nil {
		t.Fatalf("empty value must satisfy Require, got error %v", err)
	}
	if v != "" {
		t.Errorf("expected empty value, got %q", v)
	}
}
