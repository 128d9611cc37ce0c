package cli

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gfxprim/automata/internal/core"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommandLayout(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "ca", cmd.Use)
	for _, name := range []string{"render", "print", "view", "config"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
		for _, flag := range []string{"width", "height", "rules", "meta", "meta-rule", "reversible", "workers", "init", "random", "seed"} {
			assert.NotNil(t, sub.Flags().Lookup(flag), "%s --%s", name, flag)
		}
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestPrintGolden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	cases := map[string][]string{
		"rule90":    {"print", "-H", "4", "-r", "90"},
		"rule30_w2": {"print", "-W", "2", "-H", "6", "-r", "30"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, args...)
			require.NoError(t, err)
			g.Assert(t, name, []byte(out))
		})
	}
}

func TestWriteText(t *testing.T) {
	m, err := core.NewMatrix(1, 2)
	require.NoError(t, err)
	m.Row(0).SetBit(0, true)
	m.Row(1).SetBit(63, true)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, m))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "#"+strings.Repeat(".", 63), lines[0])
	assert.Equal(t, strings.Repeat(".", 63)+"#", lines[1])
}

func TestRenderWritesImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.png")
	_, err := execute(t, "render", "-W", "2", "-H", "16", "-r", "30,90", "--scale", "2", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 256, cfg.Width)
	assert.Equal(t, 32, cfg.Height)
}

func TestRenderDownsamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	_, err := execute(t, "render", "-W", "2", "-H", "16", "--out-width", "32", "--out-height", "8", "-o", path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, 8, cfg.Height)
}

func TestConfigCommandMergesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ca.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 4\nrules: \"30\"\n"), 0o644))

	out, err := execute(t, "-c", path, "config", "-H", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 4\n")
	assert.Contains(t, out, "height: 9\n")
	assert.Contains(t, out, "rules: \"30\"\n")
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"bad rule", []string{"print", "-r", "300"}, ExitCommandError},
		{"empty rules", []string{"print", "-r", ","}, ExitCommandError},
		{"zero width", []string{"print", "-W", "0"}, ExitCommandError},
		{"zero height", []string{"print", "-H", "0"}, ExitFailure},
		{"bad meta-rule", []string{"print", "--meta-rule", "999"}, ExitCommandError},
		{"missing config", []string{"-c", filepath.Join(dir, "none.yaml"), "print"}, ExitCommandError},
		{"bad extension", []string{"render", "-o", filepath.Join(dir, "out.webp")}, ExitCommandError},
		{"oversized output", []string{"render", "--out-width", "65", "-o", filepath.Join(dir, "big.png")}, ExitCommandError},
		{"unwritable output", []string{"render", "-o", filepath.Join(dir, "missing", "out.png")}, ExitFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, GetExitCode(err), "%v", err)
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("boom")))

	err := WrapExitError("configure", core.ConfigError("rules", "bad"))
	assert.Equal(t, ExitCommandError, err.Code)
	assert.True(t, errors.Is(err, core.ErrConfiguration))
	assert.Equal(t, "configure: rules configuration: bad", err.Error())

	err = WrapExitError("allocate", core.AllocError("resize", "too big"))
	assert.Equal(t, ExitFailure, err.Code)
}
