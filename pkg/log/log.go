// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/entity"
	"github.com/walteh/syncopy/pkg/mapping"
	"github.com/walteh/syncopy/pkg/operation"
	"github.com/walteh/syncopy/pkg/wiki"
)

// 🎨 Display configuration
const (
	entryIndent = 4  // spaces to indent entity entries
	nameWidth   = 35 // Base width for entity name
	kindWidth   = 8  // Width for entity kind
	idWidth     = 12 // Width for entity ids
)

// 🎯 Logger prints copy progress to a console and mirrors it into zerolog.
// It implements operation.Reporter and operation.WikiReporter.
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	counts  map[operation.Outcome]int
	wikis   int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		counts:  map[operation.Outcome]int{},
	}
}

// 📝 formatResult formats one visited entity for display
func (l *Logger) formatResult(res operation.Result) string {
	var symbol rune
	var symbolColor color.Attribute
	switch res.Outcome {
	case operation.OutcomeCopied:
		symbol = '✓'
		symbolColor = color.FgGreen
	case operation.OutcomeSkipped:
		symbol = '!'
		symbolColor = color.FgYellow
	default:
		symbol = '-'
		symbolColor = color.FgCyan
	}

	var kindColor color.Attribute
	switch res.Kind {
	case entity.KindProject, entity.KindFolder:
		kindColor = color.FgMagenta
	case entity.KindTable:
		kindColor = color.FgBlue
	default:
		kindColor = color.FgCyan
	}

	target := res.NewID
	if res.Outcome != operation.OutcomeCopied {
		target = res.Reason
	}

	return fmt.Sprintf("%s%s %s %s %s %s %s",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, res.Name),
		color.New(kindColor).Sprint(fmt.Sprintf("%-*s", kindWidth, res.Kind)),
		fmt.Sprintf("%-*s", idWidth, res.SourceID),
		color.New(color.Faint).Sprint("→"),
		target)
}

// 📝 Report prints one visited entity
func (l *Logger) Report(ctx context.Context, res operation.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[res.Outcome]++

	fmt.Fprintln(l.console, l.formatResult(res))

	ev := l.zlog.Info()
	if res.Outcome == operation.OutcomeSkipped {
		ev = l.zlog.Warn()
	}
	ev.Str("outcome", res.Outcome.String()).
		Str("kind", string(res.Kind)).
		Str("name", res.Name).
		Str("source_id", res.SourceID).
		Str("new_id", res.NewID).
		Str("reason", res.Reason).
		Msg("entity visited")
}

// 📝 ReportWiki prints one replicated wiki
func (l *Logger) ReportWiki(ctx context.Context, sourceID, destinationID string, res *wiki.Result) {
	if res == nil || res.NoWiki {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.wikis++

	fmt.Fprintf(l.console, "%s%s %s %s %s %s\n",
		fmt.Sprintf("%*s", entryIndent, ""),
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint("wiki"),
		sourceID,
		color.New(color.Faint).Sprint("→"),
		color.New(color.FgYellow).Sprint(fmt.Sprintf("%s (%s)", destinationID, plural(res.PageIDs.Len(), "page"))))

	l.zlog.Info().
		Str("source_id", sourceID).
		Str("destination_id", destinationID).
		Int("pages", res.PageIDs.Len()).
		Msg("wiki replicated")
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("syncopy")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📊 Summary renders the old → new mapping as a table followed by the
// outcome counts and the elapsed time
func (l *Logger) Summary(ctx context.Context, m *mapping.Mapping, elapsed time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data := pterm.TableData{{"Source", "Destination"}}
	m.Range(func(old, to string) bool {
		data = append(data, []string{old, to})
		return true
	})

	if m.Len() > 0 {
		err := pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(data).
			WithWriter(l.console).
			Render()
		if err != nil {
			return errors.Errorf("rendering mapping table: %w", err)
		}
	}

	line := fmt.Sprintf("%s copied, %s skipped, %s excluded, %s in %s",
		plural(l.counts[operation.OutcomeCopied], "entity"),
		plural(l.counts[operation.OutcomeSkipped], "entity"),
		plural(l.counts[operation.OutcomeExcluded], "entity"),
		plural(l.wikis, "wiki"),
		FormatInterval(elapsed))

	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(line))
	l.zlog.Info().
		Int("copied", l.counts[operation.OutcomeCopied]).
		Int("skipped", l.counts[operation.OutcomeSkipped]).
		Int("excluded", l.counts[operation.OutcomeExcluded]).
		Int("wikis", l.wikis).
		Dur("elapsed", elapsed).
		Msg("copy summary")

	return nil
}

var periods = []struct {
	name    string
	seconds int64
}{
	{"year", 60 * 60 * 24 * 365},
	{"month", 60 * 60 * 24 * 30},
	{"day", 60 * 60 * 24},
	{"hour", 60 * 60},
	{"minute", 60},
	{"second", 1},
}

// FormatInterval renders d in whole seconds, e.g. "5 minutes, 37 seconds".
// Seconds are always present; larger periods only when non-zero.
func FormatInterval(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}

	parts := []string{}
	for _, p := range periods {
		n := secs / p.seconds
		secs %= p.seconds
		if n > 0 || p.name == "second" {
			parts = append(parts, plural(int(n), p.name))
		}
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	if strings.HasSuffix(unit, "y") && unit != "day" {
		return fmt.Sprintf("%d %sies", n, strings.TrimSuffix(unit, "y"))
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
