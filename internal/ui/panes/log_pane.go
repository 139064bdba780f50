package panes

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ja-he/quickedit/internal/potatolog"
	"github.com/ja-he/quickedit/internal/styling"
	"github.com/ja-he/quickedit/internal/ui"
)

// LogPane shows the most recent log entries, newest at the bottom.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader
	minLevel  zerolog.Level

	titleString func() string
}

var hiddenLogFields = map[string]bool{
	zerolog.CallerFieldName:    true,
	zerolog.MessageFieldName:   true,
	zerolog.TimestampFieldName: true,
	zerolog.LevelFieldName:     true,
}

func (p *LogPane) levelStyle(level zerolog.Level) styling.DrawStyling {
	switch level {
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return p.Stylesheet.LogEntryTypeError
	case zerolog.WarnLevel:
		return p.Stylesheet.LogEntryTypeWarn
	case zerolog.InfoLevel:
		return p.Stylesheet.LogEntryTypeInfo
	case zerolog.DebugLevel:
		return p.Stylesheet.LogEntryTypeDebug
	case zerolog.TraceLevel:
		return p.Stylesheet.LogEntryTypeTrace
	}
	return p.Stylesheet.LogDefault
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently visible.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Fill(p.Stylesheet.LogDefault)
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitleBox)
	p.Renderer.DrawText(x, y, w, 1, p.Stylesheet.LogTitleBox, padCenter(p.titleString(), w))

	const levelLen = len(" error ")
	textX := x + levelLen + 1
	textW := w - levelLen - 1

	// one row per entry, with its extra fields appended
	entries := p.logReader.Last(h-1, p.minLevel)
	row := y + 1
	for _, entry := range entries {
		level := potatolog.EntryLevel(entry)
		p.Renderer.DrawText(x, row, levelLen, 1, p.levelStyle(level), padCenter(level.String(), levelLen))
		line := fmt.Sprintf("%v", entry[zerolog.MessageFieldName])
		for _, k := range sortedKeys(entry) {
			if !hiddenLogFields[k] {
				line += fmt.Sprintf(" %s=%v", k, entry[k])
			}
		}
		p.Renderer.DrawText(textX, row, textW, 1, p.Stylesheet.LogDefault, truncate(line, textW))
		row++
	}
}

func sortedKeys(entry potatolog.LogEntry) []string {
	keys := make([]string, 0, len(entry))
	for k := range entry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return nil
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
	minLevel zerolog.Level,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				Visible: condition,
				ID:      ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
		minLevel:    minLevel,
	}
}
