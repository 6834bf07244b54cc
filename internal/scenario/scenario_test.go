package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RiyanshKarani011235/supercollider/server/node"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func Test_Load(t *testing.T) {
	path := writeScenario(t, `
[pool]
capacity = 65536

[[group]]
id = 1
parent = 0

[[synth]]
id = 1000
parent = 1
position = "head"
control = [
  { name = "freq", value = 440.0 },
  { name = "amp", value = 0.3 },
]

[[synth]]
id = 1001
parent = 1
position = "after"
target = 1000
`)

	f, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, int64(65536), f.Pool.Capacity)
	require.Len(t, f.Groups, 1)
	require.Equal(t, uint32(1), f.Groups[0].ID)
	require.Len(t, f.Synths, 2)

	s := f.Synths[0]
	require.Equal(t, uint32(1000), s.ID)
	require.Equal(t, "head", s.Position)
	require.Equal(t, []Control{{Name: "freq", Value: 440}, {Name: "amp", Value: 0.3}}, s.Controls)

	require.Equal(t, uint32(1000), f.Synths[1].Target)
}

func Test_Load_Defaults(t *testing.T) {
	path := writeScenario(t, `
[[synth]]
id = 1
parent = 0
`)

	f, err := Load(path)
	require.NoError(t, err)
	require.Zero(t, f.Pool.Capacity)
	require.Empty(t, f.Synths[0].Position) // resolves to tail
}

func Test_Load_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "unknown position",
			body: "[[group]]\nid = 1\nposition = \"sideways\"\n",
			want: "unknown position",
		},
		{
			name: "relative without target",
			body: "[[synth]]\nid = 1\nposition = \"before\"\n",
			want: "requires a target",
		},
		{
			name: "root group id",
			body: "[[group]]\nid = 0\n",
			want: "reserved",
		},
		{
			name: "malformed toml",
			body: "[[group\n",
			want: "scenario:",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tc.body))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func Test_Load_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func Test_ParsePosition(t *testing.T) {
	cases := []struct {
		in   string
		want node.Position
	}{
		{"", node.PositionTail},
		{"tail", node.PositionTail},
		{"head", node.PositionHead},
		{"before", node.PositionBefore},
		{"after", node.PositionAfter},
		{"replace", node.PositionReplace},
		{"insert", node.PositionInsert},
	}
	for _, tc := range cases {
		p, err := ParsePosition(tc.in)
		require.NoError(t, err, "position %q", tc.in)
		require.Equal(t, tc.want, p)
	}

	_, err := ParsePosition("middle")
	require.Error(t, err)
}
