package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFormatter_Format(t *testing.T) {
	// 2024-01-01 is a Monday.
	monday := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	f := NewFormatter(time.UTC, language.English)

	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{name: "basic", msg: NewMessage("hello", monday), want: "Mon @ 09:05  > hello"},
		{name: "empty content", msg: NewMessage("", monday), want: "Mon @ 09:05  > "},
		{name: "midnight", msg: NewMessage("x", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)), want: "Sat @ 00:00  > x"},
		{name: "evening", msg: NewMessage("late", time.Date(2024, 1, 3, 23, 59, 0, 0, time.UTC)), want: "Wed @ 23:59  > late"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.msg))
		})
	}
}

func TestFormatter_ConvertsToLocation(t *testing.T) {
	// Sunday 23:30 UTC is Monday 08:30 at UTC+9.
	ts := time.Date(2023, 12, 31, 23, 30, 0, 0, time.UTC)
	f := NewFormatter(time.FixedZone("UTC+9", 9*60*60), language.English)

	assert.Equal(t, "Mon @ 08:30  > hi", f.Format(NewMessage("hi", ts)))
}

func TestFormatter_Deterministic(t *testing.T) {
	ts := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	f := NewFormatter(time.UTC, language.English)
	m := NewMessage("same", ts)
	assert.Equal(t, f.Format(m), f.Format(m))
}

func TestFormatter_AllWeekdays(t *testing.T) {
	f := NewFormatter(time.UTC, language.English)
	want := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, day := range want {
		ts := time.Date(2024, 1, 1+i, 12, 0, 0, 0, time.UTC)
		assert.Equal(t, day, f.Day(ts))
	}
}

func TestFormatter_DayUsesLocaleCasing(t *testing.T) {
	// 2024-01-05 is a Friday.
	friday := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		tag  language.Tag
		want string
	}{
		{tag: language.English, want: "Fri"},
		{tag: language.Turkish, want: "Frı"},
		{tag: language.German, want: "Fri"},
	}
	for _, tt := range tests {
		t.Run(tt.tag.String(), func(t *testing.T) {
			f := NewFormatter(time.UTC, tt.tag)
			assert.Equal(t, tt.want, f.Day(friday))
			assert.Equal(t, tt.want+" @ 12:00  > x", f.Format(NewMessage("x", friday)))
		})
	}
}

func TestNewFormatter_NilLocationIsLocal(t *testing.T) {
	f := NewFormatter(nil, language.English)
	assert.Equal(t, time.Local, f.Location())
}
