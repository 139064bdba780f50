package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/quickedit/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {

	t.Run("capacity", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(3)
		logger := zerolog.New(w)
		for i := 0; i < 5; i++ {
			logger.Info().Int("i", i).Msg("entry")
		}
		entries := w.Get()
		if len(entries) != 3 {
			t.Fatalf("%d entries retained, expected 3", len(entries))
		}
		if entries[0]["i"] != float64(2) {
			t.Error("oldest retained entry is", entries[0]["i"])
		}
		if w.Dropped() != 2 {
			t.Error("dropped", w.Dropped())
		}
	})

	t.Run("last by level", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(0)
		logger := zerolog.New(w).Level(zerolog.TraceLevel)
		logger.Debug().Msg("a")
		logger.Warn().Msg("b")
		logger.Info().Msg("c")
		logger.Error().Msg("d")
		logger.Debug().Msg("e")

		last := w.Last(2, zerolog.InfoLevel)
		if len(last) != 2 || last[0]["message"] != "c" || last[1]["message"] != "d" {
			t.Error("unexpected entries:", last)
		}
		if all := w.Last(10, zerolog.TraceLevel); len(all) != 5 {
			t.Error("unexpected number of entries:", len(all))
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		w := potatolog.NewMemoryLogReaderWriter(0)
		if _, err := w.Write([]byte("not json")); err == nil {
			t.Error("no error for non-json input")
		}
		if len(w.Get()) != 0 {
			t.Error("invalid input was logged")
		}
	})

	t.Run("entry level", func(t *testing.T) {
		if potatolog.EntryLevel(potatolog.LogEntry{"level": "warn"}) != zerolog.WarnLevel {
			t.Error("warn not parsed")
		}
		if potatolog.EntryLevel(potatolog.LogEntry{}) != zerolog.NoLevel {
			t.Error("missing level not NoLevel")
		}
	})

}
