package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/leofalp/jsonshape/core/extract"
	"github.com/leofalp/jsonshape/core/parse"
	"github.com/leofalp/jsonshape/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be reported absent")
	}
	if resolved != path {
		t.Fatalf("resolved = %q, want %q", resolved, path)
	}
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "jsonshape")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("max_depth = 5\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected default config file to be found")
	}
	if cfg.MaxDepth != 5 {
		t.Fatalf("MaxDepth = %d, want 5", cfg.MaxDepth)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
max_depth = 1
repair = " Lenient "
synthesize_descriptions = true
unwrap_fences = true

[title]
primary_keys = ["headline", " "]
fallback = "Sin título"

[tags]
keys = ["labels"]
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.MaxDepth != 1 {
		t.Errorf("MaxDepth = %d, want 1", cfg.MaxDepth)
	}
	if cfg.RepairMode() != parse.ModeLenient {
		t.Errorf("RepairMode() = %v, want lenient", cfg.RepairMode())
	}
	if !cfg.SynthesizeDescriptions {
		t.Error("expected synthesis enabled")
	}
	if !cfg.UnwrapFences {
		t.Error("expected fence unwrapping enabled")
	}
	if diff := cmp.Diff([]string{"headline"}, cfg.Title.PrimaryKeys); diff != "" {
		t.Errorf("primary keys mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(extract.TitleSecondaryKeys, cfg.Title.SecondaryKeys); diff != "" {
		t.Errorf("secondary keys should keep defaults (-want +got):\n%s", diff)
	}
	if cfg.Title.Fallback != "Sin título" {
		t.Errorf("Title.Fallback = %q", cfg.Title.Fallback)
	}
	if diff := cmp.Diff([]string{"labels"}, cfg.Tags.Keys); diff != "" {
		t.Errorf("tag keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "unknown field", body: "maximum_depth = 2\n", wantErr: "parse config"},
		{name: "bad toml", body: "max_depth = \n", wantErr: "parse config"},
		{name: "negative depth", body: "max_depth = -1\n", wantErr: "max_depth"},
		{name: "zero tag limit", body: "short_tag_limit = 0\n", wantErr: "short_tag_limit"},
		{name: "unknown repair", body: "repair = \"aggressive\"\n", wantErr: "repair"},
		{name: "no title keys", body: "[title]\nprimary_keys = []\nsecondary_keys = []\n", wantErr: "title.primary_keys"},
		{name: "no description keys", body: "[description]\nkeys = []\n", wantErr: "description.keys"},
		{name: "bad log level", body: "[logging]\nlevel = \"loud\"\n", wantErr: "logging.level"},
		{name: "bad log format", body: "[logging]\nformat = \"xml\"\n", wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestSampleMatchesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(config.Sample()))
	if err != nil {
		t.Fatalf("Parse(sample) returned error: %v", err)
	}
	if diff := cmp.Diff(config.Default(), *cfg); diff != "" {
		t.Fatalf("sample drifted from defaults (-want +got):\n%s", diff)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if string(data) != config.Sample() {
		t.Fatal("written sample differs from embedded sample")
	}
}

func TestOptionsConfigureExtractor(t *testing.T) {
	cfg, err := config.Parse([]byte(`
repair = "truncated"
unwrap_fences = true

[title]
primary_keys = ["headline"]
secondary_keys = []
placeholders = ["tbd"]

[description]
keys = ["summary"]

[tags]
keys = ["labels"]
`))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options returned error: %v", err)
	}
	e := extract.New(opts...)

	if got := e.Title(`{"title": "Ignored", "headline": "Used"}`, "FB"); got != "Used" {
		t.Errorf("Title() = %q, want Used", got)
	}
	if got := e.Title(`{"headline": "TBD soon"}`, "FB"); got != "FB" {
		t.Errorf("Title() with custom placeholder = %q, want FB", got)
	}
	if got := e.Description(`{"summary": "Short`, "FB"); got != "Short" {
		t.Errorf("Description() = %q, want repaired Short", got)
	}
	if diff := cmp.Diff([]string{"a", "b"}, e.Tags(`{"labels": ["a", "b"]}`)); diff != "" {
		t.Errorf("Tags() mismatch (-want +got):\n%s", diff)
	}
	if got := e.Title("```json\n{\"headline\": \"Fenced\"}\n```", "FB"); got != "Fenced" {
		t.Errorf("Title() with unwrap_fences = %q, want Fenced", got)
	}
}
