package keys_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251208-go-pkg-tplstr/internal/command/keys"
	"github.com/lwmacct/251208-go-pkg-tplstr/pkg/tplstr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := keys.NewCommand()
	cmd.Writer = &out

	err := cmd.Run(context.Background(), append([]string{"keys"}, args...))

	return out.String(), err
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "unique lines",
			args: []string{"--text", "${a} ${b} ${a}"},
			want: "a\nb\n",
		},
		{
			name: "all keys",
			args: []string{"--all", "--text", "${a} ${b} ${a}"},
			want: "a\nb\na\n",
		},
		{
			name: "json",
			args: []string{"--json", "--text", "${x}${y.z}"},
			want: "[\"x\",\"y.z\"]\n",
		},
		{
			name: "no keys json",
			args: []string{"--json", "--text", "plain"},
			want: "[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeys_RejectDuplicates(t *testing.T) {
	_, err := run(t, "--template-reject-duplicates", "--text", "${a}${a}")
	require.ErrorIs(t, err, tplstr.ErrDuplicateKey)
}

func TestKeys_RequireKeys(t *testing.T) {
	_, err := run(t, "--template-require-keys", "--text", "nothing here")
	require.ErrorIs(t, err, tplstr.ErrNoPlaceholders)
}
