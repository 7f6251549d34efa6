package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium || Long() != DefaultLong {
		t.Errorf("defaults: ping=%s short=%s medium=%s long=%s", Ping(), Short(), Medium(), Long())
	}
}

func TestConfigure(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{Short: 2 * time.Second, Long: time.Minute})
	if Short() != 2*time.Second {
		t.Errorf("Short() = %s, want 2s", Short())
	}
	if Long() != time.Minute {
		t.Errorf("Long() = %s, want 1m", Long())
	}
	// Zero values keep the defaults.
	if Ping() != DefaultPing || Medium() != DefaultMedium {
		t.Errorf("zero values overwrote defaults: ping=%s medium=%s", Ping(), Medium())
	}
}

func TestConfigureFromEnv(t *testing.T) {
	t.Cleanup(Reset)

	t.Setenv("TIMEOUT_SHORT", "3s")
	t.Setenv("TIMEOUT_MEDIUM", "not-a-duration")

	n := ConfigureFromEnv()
	if n != 1 {
		t.Errorf("configured %d values, want 1", n)
	}
	if Short() != 3*time.Second {
		t.Errorf("Short() = %s, want 3s", Short())
	}
	if Medium() != DefaultMedium {
		t.Errorf("invalid value changed Medium to %s", Medium())
	}
}
