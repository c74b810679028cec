package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/testutil"
)

func TestList_TextGolden(t *testing.T) {
	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{"list"})

	require.NoError(t, cmd.Execute())
	testutil.AssertGolden(t, "list_text", stdout.Bytes())
}

func TestList_VerboseShowsRealFixtures(t *testing.T) {
	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{"list", "-v", "--inputs", "/data"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), filepath.Join("/data", "day2", "part2.txt"))
	assert.Contains(t, stdout.String(), filepath.Join("/data", "day2", "part2_example.txt"))
}

func TestList_JSON(t *testing.T) {
	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetArgs([]string{"--format", "json", "list"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string      `json:"status"`
		Data   []ListEntry `json:"data"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "day1part1", resp.Data[0].ID)
	assert.Equal(t, "423", resp.Data[0].Expect.Real)
	assert.Equal(t, "fgij", resp.Data[3].Expect.Example)
	assert.Empty(t, resp.Data[3].Expect.Real)
}
