package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json", "--seed", "1"}, "--json", true},
		{"absent", []string{"--seed", "1"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
		{"explicit true", []string{"--json=true"}, "--json", true},
		{"explicit false", []string{"--json=false"}, "--json", false},
		{"last wins", []string{"--json", "--json=0"}, "--json", false},
		{"unparsable value", []string{"--json=maybe"}, "--json", false},
		{"prefix only", []string{"--jsonl"}, "--json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}

func TestFlagValue(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		found   bool
		wantErr bool
	}{
		{"separate", []string{"--count", "5"}, "5", true, false},
		{"equals", []string{"--count=5"}, "5", true, false},
		{"last wins", []string{"--count", "5", "--count=9"}, "9", true, false},
		{"absent", []string{"--seed", "1"}, "", false, false},
		{"missing value", []string{"--count"}, "", false, true},
		{"negative value", []string{"--count", "-3"}, "-3", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found, err := flagValue(tt.args, "--count")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want || found != tt.found {
				t.Errorf("flagValue(%v) = %q, %v; want %q, %v", tt.args, got, found, tt.want, tt.found)
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr string
	}{
		{
			name: "defaults",
			args: nil,
			want: Config{Output: DefaultOutput, Count: DefaultCount},
		},
		{
			name: "all flags",
			args: []string{"--output", "out/x.json", "--count=10", "--seed", "42"},
			want: Config{Output: "out/x.json", Count: 10, Seed: 42, Seeded: true},
		},
		{
			name: "zero count",
			args: []string{"--count", "0"},
			want: Config{Output: DefaultOutput, Count: 0},
		},
		{
			name:    "negative count",
			args:    []string{"--count", "-1"},
			wantErr: "must not be negative",
		},
		{
			name:    "non-integer count",
			args:    []string{"--count", "many"},
			wantErr: "not an integer",
		},
		{
			name:    "bad seed",
			args:    []string{"--seed", "-4"},
			wantErr: "invalid --seed",
		},
		{
			name:    "empty output",
			args:    []string{"--output="},
			wantErr: "path is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig(tt.args)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseConfig(%v) = %+v, want %+v", tt.args, got, tt.want)
			}
		})
	}
}

func TestGenerateDefaultCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test-data", "silesia", "large.json")
	cfg := DefaultConfig()
	cfg.Output = path

	var out bytes.Buffer
	if err := Generate(cfg, &out); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var recs []map[string]any
	if err := json.Unmarshal(data, &recs); err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(recs) != DefaultCount {
		t.Fatalf("got %d records, want %d", len(recs), DefaultCount)
	}

	want := fmt.Sprintf("File created: %s, size: %.2f KB\n", path, float64(len(data))/1024)
	if out.String() != want {
		t.Errorf("completion line = %q, want %q", out.String(), want)
	}

	kb := strings.TrimSuffix(strings.TrimPrefix(out.String(), "File created: "+path+", size: "), " KB\n")
	size, err := strconv.ParseFloat(kb, 64)
	if err != nil || size <= 0 {
		t.Errorf("reported size %q should be a positive number", kb)
	}
}

func TestGenerateSeededIsReproducible(t *testing.T) {
	dir := t.TempDir()
	read := func(name string) []byte {
		t.Helper()
		cfg := Config{Output: filepath.Join(dir, name), Count: 20, Seed: 7, Seeded: true}
		if err := Generate(cfg, &bytes.Buffer{}); err != nil {
			t.Fatalf("generate: %v", err)
		}
		b, err := os.ReadFile(cfg.Output)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}

	if !bytes.Equal(read("a.json"), read("b.json")) {
		t.Error("same seed should produce byte-identical files")
	}
}

func TestGenerateZeroRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := Generate(Config{Output: path, Count: 0}, &bytes.Buffer{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Errorf("got %q, want []", b)
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	err := Generate(Config{Output: filepath.Join(t.TempDir(), "x.json"), Count: -5}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error for negative count")
	}
}

func TestGenerateUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	// a regular file where a parent directory is expected
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Config{Output: filepath.Join(blocker, "out.json"), Count: 1}
	if err := Generate(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected filesystem error")
	}
}

func TestPrintRecord(t *testing.T) {
	recs, err := Config{Seed: 3, Seeded: true}.Generator().Generate(1)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	printRecord(&b, recs[0])
	s := b.String()

	for _, want := range []string{"id:", "uuid:", recs[0].Profile.Name, recs[0].Profile.Email, recs[0].About} {
		if !strings.Contains(s, want) {
			t.Errorf("output missing %q:\n%s", want, s)
		}
	}
}

func TestGenerateRelativeOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		// file location relative to the test root
		want string
	}{
		{"default path", DefaultOutput, "work/test-data/silesia/large.json"},
		{"parent directory", "../out/x.json", "out/x.json"},
		{"dot segments", "./a/../b/x.json", "work/b/x.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			work := filepath.Join(root, "work")
			if err := os.Mkdir(work, 0o755); err != nil {
				t.Fatal(err)
			}
			t.Chdir(work)

			var out bytes.Buffer
			if err := Generate(Config{Output: tt.output, Count: 2}, &out); err != nil {
				t.Fatalf("generate %s: %v", tt.output, err)
			}

			data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(tt.want)))
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			var recs []json.RawMessage
			if err := json.Unmarshal(data, &recs); err != nil {
				t.Fatalf("parse output: %v", err)
			}
			if len(recs) != 2 {
				t.Errorf("got %d records, want 2", len(recs))
			}
			if !strings.HasPrefix(out.String(), "File created: "+tt.output+", size: ") {
				t.Errorf("completion line should report the configured path, got %q", out.String())
			}
		})
	}
}

func TestPrintJSON(t *testing.T) {
	recs, err := Config{Seed: 9, Seeded: true}.Generator().Generate(1)
	if err != nil {
		t.Fatal(err)
	}

	var b bytes.Buffer
	if err := printJSON(&b, recs[0]); err != nil {
		t.Fatalf("printJSON: %v", err)
	}
	if !strings.HasPrefix(b.String(), "{\n  \"metadata\": {\n    \"id\": 0,") {
		t.Errorf("unexpected layout:\n%s", b.String())
	}

	var got map[string]any
	if err := json.Unmarshal(b.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["about"] != recs[0].About {
		t.Errorf("about = %v, want %q", got["about"], recs[0].About)
	}
}
