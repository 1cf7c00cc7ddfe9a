package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	for _, kind := range []Kind{KindNoAccessionNumber, KindDuplicateAccessionNumber, KindNoLocation, KindDuplicateLocation} {
		assert.Equal(t, SeverityFatal, p.Severity(kind), kind)
	}
	for _, kind := range []Kind{KindNoComposer, KindFormatLabel, KindUnparseableLine, KindInvalidAccessionNumber} {
		assert.Equal(t, SeverityWarning, p.Severity(kind), kind)
	}
}

func TestPolicyWithOverrides(t *testing.T) {
	base := DefaultPolicy()

	p, err := base.WithOverrides(map[string]string{
		"no_composer": "fatal",
		"No_Location": "warning",
	})
	require.NoError(t, err)
	assert.Equal(t, SeverityFatal, p.Severity(KindNoComposer))
	assert.Equal(t, SeverityWarning, p.Severity(KindNoLocation))
	assert.Equal(t, SeverityFatal, base.Severity(KindNoLocation), "base policy must not change")

	_, err = base.WithOverrides(map[string]string{"no_title": "fatal"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = base.WithOverrides(map[string]string{"no_composer": "loud"})
	assert.ErrorIs(t, err, ErrUnknownSeverity)
}

func TestSeverityText(t *testing.T) {
	text, err := SeverityFatal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fatal", string(text))
	assert.Equal(t, "warning", SeverityWarning.String())
}

func TestSeverityUnmarshalText(t *testing.T) {
	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("fatal")))
	assert.Equal(t, SeverityFatal, s)
	require.NoError(t, s.UnmarshalText([]byte("warn")))
	assert.Equal(t, SeverityWarning, s)
	assert.ErrorIs(t, s.UnmarshalText([]byte("loud")), ErrUnknownSeverity)
}
