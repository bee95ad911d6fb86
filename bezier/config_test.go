package bezier

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "bezier.yaml")

	err := os.WriteFile(fileName, []byte("division: 40\nstep: 0.05\nframe_interval: 20ms\n"), 0600)
	assert.Nil(t, err)

	cfg, err := LoadConfig(fileName)
	assert.Nil(t, err)
	assert.Equal(t, 40, cfg.Division)
	assert.Equal(t, 0.05, cfg.Step)
	assert.Equal(t, 20*time.Millisecond, cfg.FrameInterval)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)

	s, err := NewSessionFromConfig(cfg, nil)
	assert.Nil(t, err)
	assert.Equal(t, 40, s.Division())
}

func TestLoadConfigInvalid(t *testing.T) {
	root := t.TempDir()

	_, err := LoadConfig(filepath.Join(root, "missing.yaml"))
	assert.NotNil(t, err)

	fileName := filepath.Join(root, "bad.yaml")
	assert.Nil(t, os.WriteFile(fileName, []byte("division: 0\n"), 0600))

	_, err = LoadConfig(fileName)
	assert.ErrorIs(t, err, ErrInvalidDivision)

	assert.Nil(t, os.WriteFile(fileName, []byte("division: [1\n"), 0600))

	_, err = LoadConfig(fileName)
	assert.NotNil(t, err)
}

func TestConfigValidate(t *testing.T) {
	assert.Nil(t, DefaultConfig().Validate())

	cfg := DefaultConfig()
	cfg.Step = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidStep)

	cfg = DefaultConfig()
	cfg.FrameInterval = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidInterval)

	cfg = DefaultConfig()
	cfg.Width = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidCanvas)

	_, err := NewSessionFromConfig(cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidCanvas)
}
