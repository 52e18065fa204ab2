package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chartscale/dataset"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Files(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		body string
	}{
		{"rows.json", `[{"v": 1}, {"v": 2}]`},
		{"rows.csv", "v\n1\n2\n"},
		{"rows.toml", "[[records]]\nv = 1\n[[records]]\nv = 2\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, tc.name, tc.body)

			data, err := dataset.Load(ctx, path)
			require.NoError(t, err)
			assert.Len(t, data.Values("v"), 2)

			data, err = dataset.Load(ctx, "file://"+filepath.ToSlash(path))
			require.NoError(t, err)
			assert.Len(t, data, 2)
		})
	}
}

func TestLoad_ForcedFormat(t *testing.T) {
	path := writeFile(t, "export.txt", "v\n1\n")

	_, err := dataset.Load(context.Background(), path)
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	data, err := dataset.Load(context.Background(), path, dataset.WithFormat(dataset.FormatCSV))
	require.NoError(t, err)
	assert.Len(t, data, 1)
}

func TestLoad_Stdin(t *testing.T) {
	ctx := context.Background()

	data, err := dataset.Load(ctx, dataset.StdinURI, dataset.WithStdin(strings.NewReader(`[{"a": "x"}]`)))
	require.NoError(t, err)
	assert.Len(t, data, 1)

	data, err = dataset.Load(ctx, dataset.StdinURI,
		dataset.WithStdin(strings.NewReader("a\nx\ny\n")), dataset.WithFormat(dataset.FormatCSV))
	require.NoError(t, err)
	assert.Len(t, data, 2)
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := dataset.Load(ctx, "ftp://host/data.json")
	assert.ErrorIs(t, err, dataset.ErrUnsupportedFormat)

	_, err = dataset.Load(ctx, filepath.Join(t.TempDir(), "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
