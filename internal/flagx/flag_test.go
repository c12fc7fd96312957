package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	bot := []string{"-t", "-m", "-d"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-t", "123:abc", "-c", "bot.json", "-m", "500"},
			want: []string{"-t", "123:abc", "-m", "500"},
		},
		{
			name: "inline value",
			args: []string{"-d=file:bot.db", "-c=bot.json"},
			want: []string{"-d=file:bot.db"},
		},
		{
			name: "negative id is not taken as a value",
			args: []string{"-m", "-100123", "-t", "tok"},
			want: []string{"-m", "-t", "tok"},
		},
		{
			name: "positional arguments dropped",
			args: []string{"serve", "-t", "tok", "extra", "--verbose"},
			want: []string{"-t", "tok"},
		},
		{
			name: "stops at terminator",
			args: []string{"-t", "tok", "--", "-m", "5"},
			want: []string{"-t", "tok"},
		},
		{
			name: "repeats kept in order",
			args: []string{"-t", "a", "-t=b"},
			want: []string{"-t", "a", "-t=b"},
		},
		{
			name: "nothing",
			args: nil,
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, bot))
		})
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"-c", "bot.json"}, "bot.json"},
		{[]string{"-t", "tok", "-config", "/etc/teamfinder.json"}, "/etc/teamfinder.json"},
		{[]string{"-c", "first.json", "-config=second.json"}, "second.json"},
		{[]string{"-t", "tok"}, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfigPath(tt.args), "%v", tt.args)
	}
}

func TestEnvFile(t *testing.T) {
	assert.Equal(t, ".env", EnvFile(nil))
	assert.Equal(t, "prod.env", EnvFile([]string{"-c", "bot.json", "-env", "prod.env"}))
	assert.Equal(t, "ci.env", EnvFile([]string{"-env=ci.env"}))
}
