package infra

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("Known_Level", func(t *testing.T) {
		var buf bytes.Buffer
		configureLogger(&buf, "DEBUG")
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

		log.Debug().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("Unknown_Level_Defaults_To_Info", func(t *testing.T) {
		var buf bytes.Buffer
		configureLogger(&buf, "chatty")
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
		assert.Contains(t, buf.String(), "defaulting to 'info'")

		log.Debug().Msg("hidden")
		assert.NotContains(t, buf.String(), "hidden")
	})
}
