package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/collage/pkg/config"
	"github.com/matzehuels/collage/pkg/errors"
	"github.com/matzehuels/collage/pkg/pipeline"
)

// run executes the CLI with args and returns what it printed on stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	c := New(&bytes.Buffer{}, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func imageDir(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		f, err := os.Create(filepath.Join(dir, string(rune('a'+i))+".png"))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewGray(image.Rect(0, 0, 40, 30))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	return dir
}

func TestHeightShorthand(t *testing.T) {
	out, err := run(t, "config", "-h", "1234", "-w", "999")
	if err != nil {
		t.Fatalf("config -h error: %v", err)
	}
	for _, want := range []string{"height = 1234", "width = 999"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestHelpLongFlag(t *testing.T) {
	out, err := run(t, "--help")
	if err != nil {
		t.Fatalf("--help error: %v", err)
	}
	if !strings.Contains(out, "--height") {
		t.Errorf("help output does not list --height:\n%s", out)
	}
}

func TestConfigPrecedence(t *testing.T) {
	file := filepath.Join(t.TempDir(), "collage.toml")
	content := "width = 800\nheight = 400\npadding = 20\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "config", "--config", file, "--padding", "3")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}

	var got config.Collage
	if _, err := toml.Decode(out, &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	tests := []struct {
		name      string
		got, want int
	}{
		{"width from file", got.Width, 800},
		{"height from file", got.Height, 400},
		{"padding from flag", got.Padding, 3},
		{"text size default", got.TextSize, config.DefaultTextSize},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestInvalidFlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"negative padding", []string{"config", "--padding", "-1"}},
		{"zero width", []string{"config", "-w", "0"}},
		{"bad align", []string{"config", "-a", "sideways"}},
		{"bad color", []string{"config", "-g", "300,0,0"}},
		{"bad fit", []string{"config", "--fit", "stretch"}},
		{"bad opacity", []string{"config", "-o", "1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, tt.args...); err == nil {
				t.Errorf("%v succeeded, want error", tt.args)
			}
		})
	}
}

func TestPlanJSON(t *testing.T) {
	dir := imageDir(t, 4)
	out, err := run(t, "plan", "-f", dir, "-w", "400", "-h", "300", "-P", "0", "--json")
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	var plan pipeline.Plan
	if err := json.Unmarshal([]byte(out), &plan); err != nil {
		t.Fatalf("plan output is not JSON: %v\n%s", err, out)
	}
	if len(plan.Pages) != 1 || plan.Pages[0].Layout.Grid.Cells() != 4 {
		t.Errorf("plan = %+v, want one page with 4 cells", plan)
	}
	if got := plan.Pages[0].Layout.Grid; got.Rows != 2 || got.Columns != 2 {
		t.Errorf("grid = %v, want 2×2", got)
	}
}

func TestPlanText(t *testing.T) {
	out, err := run(t, "plan", "-f", imageDir(t, 2), "-w", "400", "-h", "300")
	if err != nil {
		t.Fatalf("plan error: %v", err)
	}
	for _, want := range []string{"Page 1", "a.png", "b.png"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestCreate(t *testing.T) {
	in := imageDir(t, 3)
	outDir := t.TempDir()
	out, err := run(t, "-f", in, "--output-dir", outDir, "-w", "300", "-h", "200", "-x", "trip", "--format", "jpg")
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(outDir, "trip-*-1.jpg"))
	if len(matches) != 1 {
		t.Fatalf("output files = %v, want one trip-*-1.jpg", matches)
	}
	if !strings.Contains(out, "Wrote 1 collage") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestCreateEmptyFolder(t *testing.T) {
	_, err := run(t, "-f", t.TempDir(), "--output-dir", t.TempDir())
	if !errors.Is(err, errors.ErrCodeEmptyInput) {
		t.Errorf("create error = %v, want EMPTY_INPUT", err)
	}
}

func TestRejectsPositionalArgs(t *testing.T) {
	if _, err := run(t, "photos"); err == nil {
		t.Error("positional argument accepted, want error")
	}
}
