package casing

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cgen/errors"
)

func TestCasify(t *testing.T) {
	words := []string{"my", "variable", "name"}

	tests := []struct {
		rule Rule
		want string
	}{
		{Flat, "myvariablename"},
		{Screaming, "MYVARIABLENAME"},
		{Camel, "myVariableName"},
		{Pascal, "MyVariableName"},
		{Snake, "my_variable_name"},
		{ScreamingSnake, "MY_VARIABLE_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.rule.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Casify(words, tt.rule))
		})
	}
}

func TestCasify_SingleWord(t *testing.T) {
	assert.Equal(t, "value", Casify([]string{"value"}, Camel))
	assert.Equal(t, "Value", Casify([]string{"value"}, Pascal))
	assert.Equal(t, "VALUE", Casify([]string{"value"}, ScreamingSnake))
}

func TestCasify_EmptyUsesPlaceholder(t *testing.T) {
	assert.Equal(t, "invalid_name", Casify(nil, Snake))
	assert.Equal(t, "InvalidName", Casify([]string{}, Pascal))
	assert.Equal(t, "INVALID_NAME", Casify([]string{"", ""}, ScreamingSnake))

	for _, r := range Rules {
		assert.NotEmpty(t, Casify(nil, r), r.String())
	}
}

func TestCasify_UnknownRuleFallsBackToSnake(t *testing.T) {
	assert.Equal(t, "a_b", Casify([]string{"a", "b"}, Rule(42)))
}

func TestPlaceholderIsCopy(t *testing.T) {
	p := Placeholder()
	p[0] = "mutated"
	assert.Equal(t, []string{"invalid", "name"}, Placeholder())
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		in   string
		want Rule
	}{
		{"flat", Flat},
		{"flatcase", Flat},
		{"SCREAMING", Screaming},
		{"camelCase", Camel},
		{"camel", Camel},
		{"PascalCase", Pascal},
		{"snake_case", Snake},
		{"snake-case", Snake},
		{"SCREAMING_SNAKE_CASE", ScreamingSnake},
		{"screaming_snake", ScreamingSnake},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRule(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseRule("kebab")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestRuleStringRoundTrip(t *testing.T) {
	for _, r := range Rules {
		parsed, err := ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	assert.Equal(t, "unknown", Rule(-1).String())
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"my_variable_name", []string{"my", "variable", "name"}},
		{"MY_VARIABLE_NAME", []string{"my", "variable", "name"}},
		{"myVariableName", []string{"my", "variable", "name"}},
		{"MyVariableName", []string{"my", "variable", "name"}},
		{"HTTPServer", []string{"http", "server"}},
		{"utf8Decoder", []string{"utf8", "decoder"}},
		{"Utf8Name", []string{"utf8", "name"}},
		{"my header", []string{"my", "header"}},
		{"my`header", []string{"my", "header"}},
		{"__a__", []string{"a"}},
		{"", nil},
		{"___", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

// randomWords builds word sequences of two to six letters; single-letter
// neighbours are ambiguous once cased ("AB") and are excluded.
func randomWords(rng *rand.Rand) []string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	n := 1 + rng.Intn(4)
	words := make([]string, n)
	for i := range words {
		b := make([]byte, 2+rng.Intn(5))
		for j := range b {
			b[j] = letters[rng.Intn(len(letters))]
		}
		words[i] = string(b)
	}
	return words
}

func TestCasify_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		words := randomWords(rng)
		for _, r := range Rules {
			cased := Casify(words, r)
			again := Casify(Words(cased), r)
			require.Equal(t, cased, again, "rule %s, words %v", r, words)
		}
	}
}

func TestCasify_Deterministic(t *testing.T) {
	words := []string{"alpha", "beta"}
	for _, r := range Rules {
		assert.Equal(t, Casify(words, r), Casify(words, r))
	}
}
