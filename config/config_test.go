package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := New()
	is.Equal(c.GetString(KeyVariant), "klondike")
	is.Equal(c.GetInt(KeyHistoryLimit), 5000)
	is.Equal(c.GetBool(KeyDebug), false)
	is.Equal(c.GetInt64(KeySeed), int64(0))
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("PATIENCE_VARIANT", "klondike-3")
	t.Setenv("PATIENCE_HISTORY_LIMIT", "100")
	c := New()
	is.Equal(c.GetString(KeyVariant), "klondike-3")
	is.Equal(c.GetInt(KeyHistoryLimit), 100)
}

func TestSetWinsOverEnv(t *testing.T) {
	is := is.New(t)
	t.Setenv("PATIENCE_VARIANT", "klondike-3")
	c := New()
	c.Set(KeyVariant, "klondike")
	is.Equal(c.GetString(KeyVariant), "klondike")
}
