package category

import (
	"reflect"
	"testing"
)

func TestLookup_Bidirectional(t *testing.T) {
	want := map[string]Key{
		"0%": 10, "25%": 2, "50%": 3, "75%": 4, "100%": 5,
		"-75%": 6, "-50%": 7, "-25%": 8, "-0%": 9,
	}
	for label, key := range want {
		c, ok := Lookup(label)
		if !ok {
			t.Fatalf("Lookup(%q) not found", label)
		}
		if c.Key != key {
			t.Fatalf("Lookup(%q).Key = %d, want %d", label, c.Key, key)
		}
		back, ok := ForKey(key)
		if !ok || back.Label != label {
			t.Fatalf("ForKey(%d) = %q, %v; want %q", key, back.Label, ok, label)
		}
	}
	if len(All()) != len(want) {
		t.Fatalf("All() returned %d categories, want %d", len(All()), len(want))
	}
}

func TestLookup_TrimsAndRejectsUnknown(t *testing.T) {
	if c, ok := Lookup("  50% "); !ok || c.Key != 3 {
		t.Fatalf("Lookup with spaces = %v, %v; want key 3", c, ok)
	}
	if _, ok := Lookup("60%"); ok {
		t.Fatal("Lookup(60%) found, want not found")
	}
}

func TestKey_KnownAndLabel(t *testing.T) {
	if !Key(10).Known() {
		t.Fatal("Key(10).Known() = false, want true")
	}
	if Key(1).Known() || Key(11).Known() {
		t.Fatal("keys outside 2-10 reported as known")
	}
	if got := Key(10).Label(); got != "0%" {
		t.Fatalf("Key(10).Label() = %q, want 0%%", got)
	}
	if got := Key(42).Label(); got != "#42" {
		t.Fatalf("Key(42).Label() = %q, want #42", got)
	}
}

func TestParseLabels(t *testing.T) {
	keys, err := ParseLabels([]string{"-0%", "0%", "-0%"})
	if err != nil {
		t.Fatalf("ParseLabels returned error: %v", err)
	}
	if !reflect.DeepEqual(keys, []Key{9, 10}) {
		t.Fatalf("ParseLabels = %v, want [9 10]", keys)
	}
	if got := Labels(keys); !reflect.DeepEqual(got, []string{"-0%", "0%"}) {
		t.Fatalf("Labels = %v, want [-0%% 0%%]", got)
	}

	if _, err := ParseLabels([]string{"50%", "bogus"}); err == nil {
		t.Fatal("ParseLabels accepted unknown label")
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Label = "changed"
	if All()[0].Label != "0%" {
		t.Fatal("All() exposes the internal slice")
	}
}
