package ics

import (
	"strings"
	"testing"

	goical "github.com/arran4/golang-ical"
	emical "github.com/emersion/go-ical"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/ics/contentline"
	"github.com/npillmayer/ics/internal/testdata"
)

// event collects the properties of the VEVENTs of a document, as seen by our
// decoder.
func events(t *testing.T, doc string) []map[string]contentline.ContentLine {
	lines, err := DecodeString(doc)
	require.NoError(t, err)
	var evs []map[string]contentline.ContentLine
	var current map[string]contentline.ContentLine
	for _, cl := range lines {
		switch {
		case cl.Name() == "BEGIN" && cl.Value() == "VEVENT":
			current = make(map[string]contentline.ContentLine)
		case cl.Name() == "END" && cl.Value() == "VEVENT":
			evs = append(evs, current)
			current = nil
		case current != nil:
			current[cl.Name()] = cl
		}
	}
	return evs
}

func TestInteropGolangICal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc, err := testdata.String("lincoln.ics")
	require.NoError(t, err)
	ours := events(t, doc)
	cal, err := goical.ParseCalendar(strings.NewReader(doc))
	require.NoError(t, err)
	theirs := cal.Events()
	require.Len(t, theirs, len(ours))
	for i, ev := range theirs {
		for _, prop := range []goical.ComponentProperty{
			goical.ComponentPropertyUniqueId,
			goical.ComponentPropertySummary,
			goical.ComponentPropertyDtStart,
			goical.ComponentPropertyDtEnd,
		} {
			p := ev.GetProperty(prop)
			require.NotNil(t, p, "golang-ical is missing %s", prop)
			cl, ok := ours[i][string(prop)]
			require.True(t, ok, "we are missing %s", prop)
			assert.Equal(t, p.Value, cl.Value(), "value of %s", prop)
		}
		start := ev.GetProperty(goical.ComponentPropertyDtStart)
		if tz, ok := start.ICalParameters["TZID"]; ok && len(tz) > 0 {
			ourTZ, _ := ours[i]["DTSTART"].Param("TZID")
			// unquoted parameter values are case-insensitive tokens for us
			assert.True(t, strings.EqualFold(tz[0], ourTZ), "TZID %q vs %q", tz[0], ourTZ)
		}
	}
}

func TestInteropEmersionICal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc, err := testdata.String("lincoln.ics")
	require.NoError(t, err)
	ours := events(t, doc)
	cal, err := emical.NewDecoder(strings.NewReader(doc)).Decode()
	require.NoError(t, err)
	theirs := cal.Events()
	require.Len(t, theirs, len(ours))
	for i, ev := range theirs {
		for _, name := range []string{emical.PropUID, emical.PropSummary, emical.PropDateTimeStart, emical.PropLocation} {
			p := ev.Props.Get(name)
			cl, ok := ours[i][name]
			if p == nil {
				assert.False(t, ok, "we have a %s go-ical does not know about", name)
				continue
			}
			require.True(t, ok, "we are missing %s", name)
			assert.Equal(t, p.Value, cl.Value(), "value of %s", name)
		}
		desc := ev.Props.Get(emical.PropDescription)
		require.NotNil(t, desc)
		text, err := desc.Text()
		require.NoError(t, err)
		assert.Equal(t, text, Text(ours[i]["DESCRIPTION"]))
	}
}
