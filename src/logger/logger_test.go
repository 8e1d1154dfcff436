package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() {
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
		log.SetOutput(os.Stderr)
		log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	})

	t.Run("json at debug", func(t *testing.T) {
		var buf bytes.Buffer
		SetOutput(&buf)

		require.NoError(t, Setup("debug", true))
		log.WithField("request_id", "r1").Debug("hello")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "r1", entry["request_id"])
		assert.Equal(t, log.DebugLevel, log.GetLevel())
	})

	t.Run("unknown level", func(t *testing.T) {
		assert.Error(t, Setup("chatty", false))
	})
}
