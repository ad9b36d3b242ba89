package lib

import "testing"
import "reflect"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

func TestSettingsSection(t *testing.T) {
	setts := Settings{
		"nodearena.capacity": 10,
		"nodearena.maxpools": 20,
		"log.level":          "info",
		"log.file":           "",
	}
	ref := Settings{"nodearena.capacity": 10, "nodearena.maxpools": 20}
	if section := setts.Section("nodearena"); !reflect.DeepEqual(ref, section) {
		t.Fatalf("expected %v, got %v", ref, section)
	}

	ref = Settings{"capacity": 10, "maxpools": 20}
	trimmed := setts.Section("nodearena.").Trim("nodearena.")
	if !reflect.DeepEqual(ref, trimmed) {
		t.Fatalf("expected %v, got %v", ref, trimmed)
	}
	if prefixed := trimmed.AddPrefix("valarena."); len(prefixed) != 2 {
		t.Fatalf("unexpected %v", prefixed)
	} else if x := prefixed.Int64("valarena.maxpools"); x != 20 {
		t.Fatalf("expected %v, got %v", 20, x)
	}
}

func TestSettingsMixin(t *testing.T) {
	setts := Settings{"a": 1, "b": "x"}
	setts = setts.Mixin(Settings{"b": "y"}, map[string]interface{}{"c": true}, 10)
	require.Len(t, setts, 3)
	assert.Equal(t, "y", setts.String("b"))
	assert.Equal(t, true, setts["c"])
}

func TestSettingsTyped(t *testing.T) {
	setts := Settings{
		"int":     int(1),
		"uint16":  uint16(2),
		"int64":   int64(3),
		"float32": float32(4.5),
		"float64": float64(5.5),
		"str":     "s",
		"bool":    false,
	}
	assert.Equal(t, int64(1), setts.Int64("int"))
	assert.Equal(t, int64(2), setts.Int64("uint16"))
	assert.Equal(t, int64(4), setts.Int64("float32"))
	assert.Equal(t, int64(3), setts.Int64("int64"))
	assert.Equal(t, int64(5), setts.Int64("float64"))

	assert.Panics(t, func() { setts.Int64("missing") })
	assert.Panics(t, func() { setts.Int64("str") })
	assert.Panics(t, func() { setts.String("bool") })
	assert.Panics(t, func() { setts.Int64("bool") })
}
