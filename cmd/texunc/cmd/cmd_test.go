package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mdwerror "github.com/texunc/texunc/foundation/core/error"
	"github.com/texunc/texunc/pkg/core/config"
)

// resetFlags restores flag defaults left over from earlier runs
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI in an isolated directory without a config file
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	t.Setenv("HOME", t.TempDir())
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestFormatCommand(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"scientific", []string{"format", "0.0000012345", "0.0000005"}, `$1.2(5)\cdot10^{-6}$`},
		{"plain", []string{"format", "1234.5", "0.5"}, "1,234.5(5)"},
		{"integer", []string{"format", "7"}, "7"},
		{"missing value", []string{"format", "none", "3"}, "None(3)"},
		{"max power flag", []string{"format", "--max-power", "2", "1234.5"}, `$1.2\cdot10^{3}$`},
		{"zero dp ints off", []string{"format", "--zero-dp-ints=false", "7"}, "7.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := strings.TrimSpace(out); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatCommand_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := run(t, "format", "abc")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}

	_, err = run(t, "format", "--max-power", "1", "--min-power", "2", "5")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestFormatCommand_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, "texunc.toml", "[format]\nmin_dp = 3\n")

	out, err := run(t, "format", "2", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "2.000(1000)" {
		t.Errorf("output = %q, want config min_dp applied", got)
	}

	out, err = run(t, "format", "--min-dp", "0", "2", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := strings.TrimSpace(out); got != "2(1)" {
		t.Errorf("output = %q, want flag to override config", got)
	}
}

const tableYAML = `
index: [method, result type]
columns: [samples]
rows:
  - labels: [standard, value]
    values: [0.5]
  - labels: [standard, uncertainty]
    values: [0.01]
  - labels: [dynamic, value]
    values: [3]
`

func TestTableCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "results.yaml", tableYAML)

	out, err := run(t, "table", path,
		"--caption", "Run times.", "--label", "tab:runs",
		"--star", "--caption-below",
		"--sub", "standard=Standard", "--sub", "Standard=Std")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.HasPrefix(out, "\n\\begin{table*}\n\\centering\n\\begin{tabular}{ll}") {
		t.Errorf("unexpected start:\n%s", out)
	}
	if !strings.Contains(out, "Std & 0.50(1) \\\\") {
		t.Errorf("substitutions not applied in order:\n%s", out)
	}
	if !strings.HasSuffix(out, "\\caption{Run times.}\\label{tab:runs}\n\\end{table*}\n") {
		t.Errorf("unexpected end:\n%s", out)
	}
}

func TestTableCommand_CSVIndexColumns(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "r.csv", "result type,x\nvalue,1.5\nuncertainty,0.2\n")

	out, err := run(t, "table", path, "--index-cols", "1")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "1.5(2)") {
		t.Errorf("output:\n%s", out)
	}
}

func TestTableCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	noLevel := writeFile(t, dir, "bad.yaml", "index: [method]\ncolumns: [x]\nrows:\n  - labels: [a]\n    values: [1]\n")
	good := writeFile(t, dir, "good.yaml", tableYAML)

	tests := []struct {
		name string
		args []string
		code mdwerror.Code
	}{
		{"missing result level", []string{"table", noLevel}, mdwerror.CodeContractViolation},
		{"bad substitution", []string{"table", good, "--sub", "nothing"}, mdwerror.CodeInvalidInput},
		{"missing file", []string{"table", filepath.Join(dir, "none.yaml")}, mdwerror.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if !mdwerror.HasCode(err, tt.code) {
				t.Errorf("error = %v, want %v", err, tt.code)
			}
		})
	}
}

func TestPreviewCommand_Static(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "results.yaml", tableYAML)

	out, err := run(t, "preview", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"samples", "standard", "0.50(1)", "dynamic"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	chdir(t, t.TempDir())
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "texunc ") {
		t.Errorf("output = %q", out)
	}
}
