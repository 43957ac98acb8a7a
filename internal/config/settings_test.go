package config

import "testing"

type fakeSettings map[string]string

func (f fakeSettings) GetSetting(key string) (string, error) {
	return f[key], nil
}

func TestLoader_Defaults(t *testing.T) {
	l := NewLoader(fakeSettings{})

	if got := l.Int("log.max_backups", 3); got != 3 {
		t.Fatalf("expected default 3, got %d", got)
	}
	if got := l.Bool("log.compress", true); !got {
		t.Fatalf("expected default true")
	}
	if got := l.String("export.dir", "./export"); got != "./export" {
		t.Fatalf("expected default ./export, got %q", got)
	}
}

func TestLoader_StoredValues(t *testing.T) {
	l := NewLoader(fakeSettings{
		"log.max_backups": "7",
		"log.compress":    "false",
		"export.dir":      "/data/export",
		"bad.int":         "seven",
	})

	if got := l.Int("log.max_backups", 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := l.Bool("log.compress", true); got {
		t.Fatalf("expected stored false to win over default")
	}
	if got := l.String("export.dir", "./export"); got != "/data/export" {
		t.Fatalf("expected stored path, got %q", got)
	}
	if got := l.Int("bad.int", 3); got != 3 {
		t.Fatalf("expected default for unparsable value, got %d", got)
	}
}
