package contentline

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ics/internal/testdata"
)

type lineCase struct {
	Line   string     `yaml:"line"`
	Name   string     `yaml:"name"`
	Params [][]string `yaml:"params"`
	Value  string     `yaml:"value"`
	Error  string     `yaml:"error"`
}

var parseErrors = map[string]error{
	"EmptyOrBlankInput":     ErrEmptyOrBlankInput,
	"MissingValueSeparator": ErrMissingValueSeparator,
	"MissingPropertyName":   ErrMissingPropertyName,
	"InvalidPropertyName":   ErrInvalidPropertyName,
	"MalformedParameter":    ErrMalformedParameter,
}

func TestParseCases(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var cases []lineCase
	require.NoError(t, testdata.LoadYAML("contentlines.yaml", &cases))
	require.NotEmpty(t, cases)
	for i, c := range cases {
		t.Run(fmt.Sprintf("%02d", i), func(t *testing.T) {
			cl, err := Parse(c.Line)
			if c.Error != "" {
				expected, ok := parseErrors[c.Error]
				require.True(t, ok, "unknown error name %q in fixture", c.Error)
				assert.ErrorIs(t, err, expected, "line %q", c.Line)
				return
			}
			require.NoError(t, err, "line %q", c.Line)
			assert.Equal(t, c.Name, cl.Name())
			assert.Equal(t, c.Value, cl.Value())
			var names []string
			for _, p := range c.Params {
				require.Len(t, p, 2)
				names = append(names, p[0])
				v, ok := cl.Param(p[0])
				assert.True(t, ok, "parameter %s missing", p[0])
				assert.Equal(t, p[1], v, "parameter %s", p[0])
			}
			assert.Equal(t, names, cl.ParamNames())
		})
	}
}

func TestParseQuotedParameter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cl, err := Parse(`DESCRIPTION;ALTREP="http://example.com:8080;foo=bar,baz":Test`)
	require.NoError(t, err)
	assert.Equal(t, "DESCRIPTION", cl.Name())
	assert.Equal(t, "Test", cl.Value())
	altrep, ok := cl.Param("altrep")
	assert.True(t, ok)
	assert.Equal(t, "http://example.com:8080;foo=bar,baz", altrep)
}

func TestParseStripsLineTerminator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		line, value string
	}{
		{"SUMMARY:Hello\r\n", "Hello"},
		{"SUMMARY:Hello\n", "Hello"},
		{"SUMMARY:Hello\r", "Hello\r"},
		{"SUMMARY:Hello\n\n", "Hello\n"},
		{"SUMMARY:Hello\r\n\r\n", "Hello\r\n"},
	}
	for _, c := range cases {
		cl, err := Parse(c.line)
		require.NoError(t, err)
		assert.Equal(t, c.value, cl.Value(), "value of %q", c.line)
	}
}

func TestParseErrorContextKeepsCodePoints(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for pad := 0; pad < 4; pad++ {
		line := "X;" + strings.Repeat("a", pad) + strings.Repeat("ä😀", 20) + ":v"
		_, err := Parse(line)
		require.ErrorIs(t, err, ErrMalformedParameter)
		assert.NotContains(t, err.Error(), `\x`, "error text splits a code point")
	}
}

func TestParseErrorsAreWrapped(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := Parse("DTSTART;INVALIDPARAM:20080212")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedParameter))
	assert.Contains(t, err.Error(), "INVALIDPARAM")
	_, err = Parse("SUMMARY Test Event")
	assert.ErrorIs(t, err, ErrMissingValueSeparator)
	_, err = Parse("X:" + strings.Repeat("y", 100))
	assert.NoError(t, err)
}

func TestParseIsDeterministic(t *testing.T) {
	line := `ATTENDEE;ROLE=chair;CN="Jane Doe";RSVP=TRUE:mailto:jane@example.com`
	first, err := Parse(line)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Parse(line)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestParametersAreCopied(t *testing.T) {
	cl, err := Parse("X;A=1:v")
	require.NoError(t, err)
	p := cl.Parameters()
	p.Set("A", "2")
	p.Set("B", "3")
	v, _ := cl.Param("A")
	assert.Equal(t, "1", v, "content line must not change through a copy of its parameters")
	assert.Equal(t, []string{"A"}, cl.ParamNames())
}

func ExampleParse() {
	cl, err := Parse(`dtstart;tzid="Europe/Berlin";value=date-time:20210301T090000`)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cl.Name())
	cl.Parameters().Each(func(name, value string) {
		fmt.Printf("  %s = %s\n", name, value)
	})
	fmt.Println(cl.Value())
	// Output:
	// DTSTART
	//   TZID = Europe/Berlin
	//   VALUE = DATE-TIME
	// 20210301T090000
}
