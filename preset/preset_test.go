package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/256dpi/max-easing/curve"
	"github.com/256dpi/max-easing/tween"
)

func TestParse(t *testing.T) {
	opts, err := Parse("duration=2 curve=outCubic delay=0.5")
	require.NoError(t, err)
	assert.Equal(t, tween.Options{Duration: 2, Curve: curve.OutCubic, Delay: 0.5}, opts)

	opts, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, tween.DefaultOptions(), opts)

	opts, err = Parse(`curve="in out elastic"`)
	require.NoError(t, err)
	assert.Equal(t, curve.InOutElastic, opts.Curve)
	assert.Equal(t, 1.0, opts.Duration)

	opts, err = Parse("curve=wobble")
	require.NoError(t, err)
	assert.Equal(t, curve.Linear, opts.Curve)
}

func TestParseErrors(t *testing.T) {
	for _, str := range []string{
		"duration",
		"speed=3",
		"duration=fast",
		"delay=",
		`curve="linear`,
	} {
		_, err := Parse(str)
		assert.Error(t, err, str)
	}
}

func TestApply(t *testing.T) {
	base := tween.Options{Duration: 3, Curve: curve.InQuad, Delay: 1}

	opts, err := Apply(base, "delay=0")
	require.NoError(t, err)
	assert.Equal(t, tween.Options{Duration: 3, Curve: curve.InQuad}, opts)
}

const document = `
fade:
  duration: 0.5
  curve: outQuad
drop:
  duration: 1.2
  curve: outBounce
  delay: 0.1
plain: {}
`

func TestArgs(t *testing.T) {
	for _, item := range []struct {
		args []string
		opts string
		file string
	}{
		{nil, "", ""},
		{[]string{"duration=2", "curve=outCubic"}, "duration=2 curve=outCubic", ""},
		{[]string{"duration=2 curve=outCubic"}, "duration=2 curve=outCubic", ""},
		{[]string{"duration=2", "presets.yaml"}, "duration=2", "presets.yaml"},
		{[]string{"/tmp/Presets.YML"}, "", "/tmp/Presets.YML"},
		{[]string{"presets.yaml", "delay=1"}, "presets.yaml delay=1", ""},
	} {
		opts, file := Args(item.args)
		assert.Equal(t, item.opts, opts, item.args)
		assert.Equal(t, item.file, file, item.args)
	}

	// joined arguments parse as options
	opts, _ := Args([]string{"duration=2", "curve=outCubic"})
	parsed, err := Parse(opts)
	require.NoError(t, err)
	assert.Equal(t, tween.Options{Duration: 2, Curve: curve.OutCubic}, parsed)
}

func TestDecode(t *testing.T) {
	set, err := Decode(strings.NewReader(document))
	require.NoError(t, err)
	assert.Equal(t, Set{
		"fade":  {Duration: 0.5, Curve: curve.OutQuad},
		"drop":  {Duration: 1.2, Curve: curve.OutBounce, Delay: 0.1},
		"plain": {Duration: 1, Curve: curve.Linear},
	}, set)

	opts, ok := set.Get("drop")
	assert.True(t, ok)
	assert.Equal(t, curve.OutBounce, opts.Curve)

	_, ok = set.Get("missing")
	assert.False(t, ok)

	set, err = Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, set)

	_, err = Decode(strings.NewReader("- a\n- b\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	set, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, set, 3)

	// cached until forgotten
	require.NoError(t, os.WriteFile(path, []byte("only: {duration: 2}\n"), 0o644))
	set, err = Load(path)
	require.NoError(t, err)
	assert.Len(t, set, 3)

	Forget(path)
	set, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, Set{"only": {Duration: 2}}, set)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
