// Package transcript prints a finished session's messages as a table.
package transcript

import (
	"io"
	"strconv"

	"chatscreen/internal/chat"

	"github.com/olekukonko/tablewriter"
)

// Write renders msgs to w with one row per message, oldest first.
// Day and time use f's zone and locale, matching the on-screen rows.
func Write(w io.Writer, msgs []chat.Message, f *chat.Formatter) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Day", "Time", "Content"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	for i, m := range msgs {
		ts := m.Timestamp().In(f.Location())
		table.Append([]string{
			strconv.Itoa(i + 1),
			f.Day(ts),
			ts.Format("15:04"),
			m.Content(),
		})
	}
	table.Render()
}
