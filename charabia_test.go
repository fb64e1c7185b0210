package charabia

import (
	"errors"
	"testing"
)

// resetDefault clears the package configuration and restores whatever was
// there once the test finishes.
func resetDefault(t *testing.T) {
	t.Helper()
	prev := Default
	Default = nil
	t.Cleanup(func() { Default = prev })
}

func TestConfigure(t *testing.T) {
	t.Run("Valid", testConfigureValid)
	t.Run("Invalid", testConfigureInvalid)
	t.Run("InvalidKeepsPrevious", testConfigureInvalidKeepsPrevious)
}

func testConfigureValid(t *testing.T) {
	resetDefault(t)
	if err := Configure("xyzx"); err != nil {
		t.Fatal(err)
	}
	if !Configured() {
		t.Error("Configured() = false after Configure")
	}
	if got := Separators(); got != "xyz" {
		t.Errorf("Separators() = %q, want %q", got, "xyz")
	}
}

func testConfigureInvalid(t *testing.T) {
	resetDefault(t)
	if err := Configure("a!b"); !errors.Is(err, ErrInvalidSeparators) {
		t.Errorf("Configure(a!b): got %v, want ErrInvalidSeparators", err)
	}
	if Configured() {
		t.Error("Configured() = true after failed Configure")
	}
}

func testConfigureInvalidKeepsPrevious(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	if err := Configure(""); !errors.Is(err, ErrInvalidSeparators) {
		t.Errorf("Configure(empty): got %v, want ErrInvalidSeparators", err)
	}
	if got := Separators(); got != "xz" {
		t.Errorf("failed Configure clobbered separators: got %q, want %q", got, "xz")
	}
}

func TestUnconfigured(t *testing.T) {
	resetDefault(t)
	if Configured() {
		t.Error("Configured() = true before any Configure")
	}
	if got := Separators(); got != "" {
		t.Errorf("Separators() = %q, want empty", got)
	}
	if _, err := Encode("x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Encode: got %v, want ErrNotConfigured", err)
	}
	if _, err := EncodeFixed("x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("EncodeFixed: got %v, want ErrNotConfigured", err)
	}
	if _, err := EncodeTower("x", 4); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("EncodeTower: got %v, want ErrNotConfigured", err)
	}
	if _, err := Decode("x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Decode: got %v, want ErrNotConfigured", err)
	}
	if _, err := Split("x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Split: got %v, want ErrNotConfigured", err)
	}
}

func TestPackageRoundTrip(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	encoded, err := Encode("package level")
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if got != "package level" {
		t.Errorf("Decode(Encode(...)) = %q", got)
	}
}

func TestWithSeparators(t *testing.T) {
	t.Run("Restores", testWithSeparatorsRestores)
	t.Run("RestoresOnError", testWithSeparatorsRestoresOnError)
	t.Run("RestoresOnPanic", testWithSeparatorsRestoresOnPanic)
	t.Run("InvalidLeavesCurrent", testWithSeparatorsInvalid)
}

func testWithSeparatorsRestores(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	err := WithSeparators("ab", func() error {
		if got := Separators(); got != "ab" {
			t.Errorf("Separators() inside body = %q, want %q", got, "ab")
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := Separators(); got != "xz" {
		t.Errorf("Separators() after body = %q, want %q", got, "xz")
	}
}

func testWithSeparatorsRestoresOnError(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	bodyErr := errors.New("body failed")
	if err := WithSeparators("ab", func() error { return bodyErr }); !errors.Is(err, bodyErr) {
		t.Errorf("WithSeparators: got %v, want body error", err)
	}
	if got := Separators(); got != "xz" {
		t.Errorf("Separators() after body error = %q, want %q", got, "xz")
	}
}

func testWithSeparatorsRestoresOnPanic(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("body panic did not propagate")
			}
		}()
		WithSeparators("ab", func() error { panic("boom") })
	}()
	if got := Separators(); got != "xz" {
		t.Errorf("Separators() after body panic = %q, want %q", got, "xz")
	}
}

func testWithSeparatorsInvalid(t *testing.T) {
	resetDefault(t)
	if err := Configure("xz"); err != nil {
		t.Fatal(err)
	}
	ran := false
	err := WithSeparators("!", func() error {
		ran = true
		return nil
	})
	if !errors.Is(err, ErrInvalidSeparators) {
		t.Errorf("WithSeparators(invalid): got %v, want ErrInvalidSeparators", err)
	}
	if ran {
		t.Error("body ran despite invalid temporary separators")
	}
	if got := Separators(); got != "xz" {
		t.Errorf("Separators() after invalid override = %q, want %q", got, "xz")
	}
}

func TestSplitGroups(t *testing.T) {
	resetDefault(t)
	if err := Configure("ab"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		text string
		want []string
	}{
		{"", []string{""}},
		{"a", []string{"", ""}},
		{"lkealkf", []string{"lke", "lkf"}},
		{"lkeblkf", []string{"lke", "lkf"}},
		{"ablke", []string{"", "", "lke"}},
	}
	for _, tt := range cases {
		got, err := Split(tt.text)
		if err != nil {
			t.Fatalf("Split(%q): %v", tt.text, err)
		}
		if len(got) != len(tt.want) {
			t.Errorf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Split(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
			}
		}
	}

	if _, err := Split("cccccccc"); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("Split(8-char group): got %v, want ErrMalformedInput", err)
	}
}
