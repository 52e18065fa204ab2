package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chartscale/internal/config"
)

const salesCSV = "day,price,fruit\n2024-01-01,10,apple\n2024-01-02,99999,pear\n2024-01-03,50,apple\n"

// resetFlags restores every flag to its default between executions of the
// shared rootCmd.
func resetFlags(t *testing.T) {
	t.Helper()
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			if sv, ok := f.Value.(pflag.SliceValue); ok {
				require.NoError(t, sv.Replace(nil))
			} else {
				require.NoError(t, f.Value.Set(f.DefValue))
			}
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		reset(c.Flags())
	}
}

// run executes the CLI with stdin and returns stdout and stderr. A private
// config path is added unless args name one.
func run(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	resetFlags(t)

	if !slices.Contains(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "config.toml"))
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(stdin)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return run(t, strings.NewReader(""), args...)
}

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestVersionCmd_Executes(t *testing.T) {
	originalVersion := version
	SetVersion("1.2.3")
	defer func() { version = originalVersion }()

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "chartscale version 1.2.3")
}

func TestInferCmd_Text(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	out, _, err := execute(t, "infer", src)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "day")
	assert.Contains(t, lines[0], "time")
	assert.Contains(t, lines[1], "fruit")
	assert.Contains(t, lines[1], "categorical")
	assert.Contains(t, lines[2], "price")
	assert.Contains(t, lines[2], "logarithmic")
}

func TestInferCmd_JSONAndOverrides(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	out, _, err := execute(t, "infer", src, "price", "missing", "--json", "--log-threshold", "1e6")
	require.NoError(t, err)

	var rows []inference
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	assert.Equal(t, []inference{
		{Field: "price", Type: "number"},
		{Field: "missing", Type: "categorical"},
	}, rows)
}

func TestInferCmd_Stdin(t *testing.T) {
	out, _, err := run(t, strings.NewReader(`[{"n": 1}, {"n": 2}]`), "infer", "-", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"field": "n", "type": "number"}]`, out)
}

func TestScaleCmd_BandJSON(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	out, _, err := execute(t, "scale", src, "fruit", "--json", "--range", "0,310")
	require.NoError(t, err)

	var rep struct {
		Type      string    `json:"type"`
		Values    int       `json:"values"`
		Domain    []string  `json:"domain"`
		Range     []float64 `json:"range"`
		Step      float64   `json:"step"`
		Bandwidth float64   `json:"bandwidth"`
		Bands     []band    `json:"bands"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "categorical", rep.Type)
	assert.Equal(t, 3, rep.Values)
	assert.Equal(t, []string{"apple", "pear"}, rep.Domain)
	assert.Equal(t, []float64{0, 310}, rep.Range)
	assert.InDelta(t, 310/2.1, rep.Step, 1e-9)
	assert.InDelta(t, 0.9*310/2.1, rep.Bandwidth, 1e-9)
	require.Len(t, rep.Bands, 2)
	assert.Equal(t, "pear", rep.Bands[1].Key)
}

func TestScaleCmd_Text(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	out, _, err := execute(t, "scale", src, "price", "--range", "0,500", "--ticks", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "logarithmic")
	assert.Contains(t, out, "10 … 99999")
	assert.Contains(t, out, "0 … 500")
	assert.Contains(t, out, "ticks")
}

func TestDescribeCmd(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	out, _, err := execute(t, "describe", src, "--json")
	require.NoError(t, err)
	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports), out)
	require.Len(t, reports, 3)
	assert.Equal(t, "time", reports[0]["type"])
	assert.Equal(t, []any{"2024-01-01T00:00:00Z", "2024-01-03T00:00:00Z"}, reports[0]["domain"])
	assert.Equal(t, []any{10.0, 99999.0}, reports[2]["domain"])

	out, _, err = execute(t, "describe", src)
	require.NoError(t, err)
	assert.Contains(t, out, "3 records, 3 fields")
	assert.Contains(t, out, "apple pear")
}

func TestCmd_ConfigFile(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.LogThreshold = 1e9
	require.NoError(t, config.Save(cfgPath, cfg))

	out, _, err := execute(t, "infer", src, "price", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "number")

	require.NoError(t, os.WriteFile(cfgPath, []byte("padding = 3.0"), 0o600))
	_, _, err = execute(t, "infer", src, "--config", cfgPath)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCmd_Errors(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	_, _, err := execute(t, "infer", src, "--padding", "1.5")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "infer", "-", "--watch")
	assert.ErrorIs(t, err, errNotWatchable)

	_, _, err = execute(t, "scale", src)
	assert.Error(t, err)

	_, _, err = execute(t, "infer", filepath.Join(t.TempDir(), "absent.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCmd_Metrics(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	_, errOut, err := execute(t, "infer", src, "--metrics")
	require.NoError(t, err)
	assert.Contains(t, errOut, `chartscale_inferences_total{type="time"} 1`)
	assert.Contains(t, errOut, `chartscale_loads_total{outcome="ok"} 1`)
}

func TestCmd_Verbose(t *testing.T) {
	src := writeSource(t, "sales.csv", salesCSV)

	var logs bytes.Buffer
	setLogOutput(t, &logs)

	_, _, err := execute(t, "infer", src, "nope", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "loaded 3 records")
	assert.Contains(t, logs.String(), `field "nope" does not occur`)
}
