// Package cli implements zgen's command-line subcommands.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zgen/internal/output"
	"github.com/zarlcorp/zgen/internal/record"
	"golang.org/x/term"
)

const (
	// DefaultOutput is where the corpus is written when --output is absent.
	DefaultOutput = "test-data/silesia/large.json"
	// DefaultCount yields roughly 1 MB of JSON.
	DefaultCount = 1100
)

// Config is the effective configuration of a generate run.
type Config struct {
	Output string
	Count  int
	Seed   uint64
	Seeded bool
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{Output: DefaultOutput, Count: DefaultCount}
}

// Validate rejects configurations that cannot produce a corpus.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("invalid --count %d: must not be negative", c.Count)
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("invalid --output: path is empty")
	}
	return nil
}

// ParseConfig builds a Config from command arguments on top of the defaults.
func ParseConfig(args []string) (Config, error) {
	cfg := DefaultConfig()

	if v, ok, err := flagValue(args, "--output"); err != nil {
		return Config{}, err
	} else if ok {
		cfg.Output = v
	}

	if v, ok, err := flagValue(args, "--count"); err != nil {
		return Config{}, err
	} else if ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid --count %q: not an integer", v)
		}
		cfg.Count = n
	}

	seed, seeded, err := parseSeed(args)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed, cfg.Seeded = seed, seeded

	return cfg, cfg.Validate()
}

// Generator returns a record generator honoring the seed, if any.
func (c Config) Generator() *record.Generator {
	if c.Seeded {
		return record.New(record.WithSeed(c.Seed))
	}
	return record.New()
}

// CmdGenerate generates the corpus and writes it to disk.
func CmdGenerate(args []string) {
	cfg, err := ParseConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zgen: %v\n", err)
		os.Exit(1)
	}

	if err := Generate(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "zgen: %v\n", err)
		os.Exit(1)
	}
}

// Generate runs generate, serialize and write for cfg, then prints the
// completion line to w.
func Generate(cfg Config, w io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	recs, err := cfg.Generator().Generate(cfg.Count)
	if err != nil {
		return err
	}

	fsys, name, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}

	size, err := output.Write(fsys, name, recs)
	if err != nil {
		return err
	}

	slog.Debug("corpus written", "path", cfg.Output, "records", len(recs), "bytes", size, "seeded", cfg.Seeded)

	line := fmt.Sprintf("File created: %s, size: %.2f KB", cfg.Output, output.KB(size))
	if isTerminal(w) {
		line = zstyle.StatusOK.Render(line)
	}
	fmt.Fprintln(w, line)
	return nil
}

// CmdSample generates and prints a single record.
func CmdSample(args []string) {
	seed, seeded, err := parseSeed(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zgen: %v\n", err)
		os.Exit(1)
	}

	cfg := Config{Seed: seed, Seeded: seeded}
	recs, err := cfg.Generator().Generate(1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zgen: %v\n", err)
		os.Exit(1)
	}

	if hasFlag(args, "--json") {
		if err := printJSON(os.Stdout, recs[0]); err != nil {
			fmt.Fprintf(os.Stderr, "zgen: %v\n", err)
			os.Exit(1)
		}
		return
	}
	printRecord(os.Stdout, recs[0])
}

// openOutput roots a filesystem at the volume root so that any path,
// including relative ones that climb out of the working directory, can be
// addressed by a slash-separated name inside it.
func openOutput(path string) (zfilesystem.ReadWriteFileFS, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve output %s: %w", path, err)
	}

	root := filepath.VolumeName(abs) + string(filepath.Separator)
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return nil, "", fmt.Errorf("resolve output %s: %w", path, err)
	}
	return zfilesystem.NewOSFileSystem(root), filepath.ToSlash(rel), nil
}

func printRecord(w io.Writer, r record.Record) {
	label := lipgloss.NewStyle().Bold(true)
	if !isTerminal(w) {
		label = lipgloss.NewStyle()
	}
	row := func(k, v string) {
		fmt.Fprintf(w, "  %s %s\n", label.Render(fmt.Sprintf("%-12s", k+":")), v)
	}

	m, p, wk := r.Metadata, r.Profile, r.Work
	row("id", strconv.Itoa(m.ID))
	row("uuid", m.UUID)
	row("timestamp", m.Timestamp)
	row("version", m.Version)
	row("name", p.Name)
	row("email", p.Email)
	row("phone", p.Phone)
	row("address", fmt.Sprintf("%s, %s %s", p.Address.Street, p.Address.City, p.Address.PostalCode))
	row("coords", fmt.Sprintf("%.6f, %.6f", p.Address.Coordinates.Lat, p.Address.Coordinates.Lng))
	row("active", strconv.FormatBool(p.IsActive))
	row("balance", fmt.Sprintf("%.2f", p.Balance))
	row("work", fmt.Sprintf("%s, %s at %s", wk.Role, wk.Department, wk.Company))
	row("salary", strconv.Itoa(wk.Salary))
	row("tags", strings.Join(wk.Tags, ", "))
	row("theme", r.Preferences.Theme)
	row("language", r.Preferences.Language)
	fmt.Fprintf(w, "\n  %s\n", zstyle.MutedText.Render(r.About))
}

// printJSON writes v the same way output.Marshal renders the corpus, so a
// sampled record reads exactly like one element of the file.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func parseSeed(args []string) (uint64, bool, error) {
	v, ok, err := flagValue(args, "--seed")
	if err != nil || !ok {
		return 0, false, err
	}
	seed, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid --seed %q: not an unsigned integer", v)
	}
	return seed, true, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// hasFlag reports whether a boolean flag is set, either bare or as
// "--flag=<bool>". The last occurrence wins; unparsable values count as unset.
func hasFlag(args []string, flag string) bool {
	set := false
	for _, a := range args {
		k, v, withValue := strings.Cut(a, "=")
		if !strings.EqualFold(k, flag) {
			continue
		}
		if !withValue {
			set = true
			continue
		}
		b, err := strconv.ParseBool(v)
		set = err == nil && b
	}
	return set
}

// flagValue finds flag as "--flag value" or "--flag=value". The last
// occurrence wins.
func flagValue(args []string, flag string) (string, bool, error) {
	var (
		val   string
		found bool
	)
	for i := 0; i < len(args); i++ {
		a := args[i]
		if k, v, ok := strings.Cut(a, "="); ok && strings.EqualFold(k, flag) {
			val, found = v, true
			continue
		}
		if !strings.EqualFold(a, flag) {
			continue
		}
		if i+1 >= len(args) {
			return "", false, fmt.Errorf("flag %s needs a value", flag)
		}
		i++
		val, found = args[i], true
	}
	return val, found, nil
}
