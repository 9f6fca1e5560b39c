package chat

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_SendAppendsAndClears(t *testing.T) {
	s := NewStore()
	in := NewInput(s, PolicyAllowEmpty)

	in.SetText("hello")
	m, err := in.Send()
	require.NoError(t, err)

	assert.Equal(t, "hello", m.Content())
	assert.Equal(t, "", in.Text())
	assert.Equal(t, []string{"hello"}, contents(s.List()))
}

func TestInput_NSendsPreserveContentsAndOrder(t *testing.T) {
	s := NewStore()
	in := NewInput(s, PolicyAllowEmpty)
	want := []string{"c1", "c2", "c3", "c4", "c5"}

	for _, c := range want {
		in.SetText(c)
		_, err := in.Send()
		require.NoError(t, err)
		assert.Equal(t, "", in.Text(), "buffer must be empty after send")
	}
	if diff := cmp.Diff(want, contents(s.List())); diff != "" {
		t.Errorf("store mismatch (-want +got):\n%s", diff)
	}
}

func TestInput_SetTextReplaces(t *testing.T) {
	in := NewInput(NewStore(), PolicyAllowEmpty)
	in.SetText("draft")
	in.SetText("final")
	assert.Equal(t, "final", in.Text())
	in.SetText("")
	assert.Equal(t, "", in.Text())
}

func TestInput_AllowEmptySendsEmptyContent(t *testing.T) {
	s := NewStore()
	in := NewInput(s, PolicyAllowEmpty)

	m, err := in.Send()
	require.NoError(t, err)
	assert.Equal(t, "", m.Content())
	assert.Equal(t, 1, s.Len())
}

func TestInput_RejectBlank(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "tabs and newline", text: "\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			in := NewInput(s, PolicyRejectBlank)
			in.SetText(tt.text)

			_, err := in.Send()
			assert.ErrorIs(t, err, ErrBlankContent)
			assert.Equal(t, 0, s.Len())
			assert.Equal(t, tt.text, in.Text(), "buffer kept on rejection")
		})
	}
}

func TestInput_RejectBlankAcceptsText(t *testing.T) {
	s := NewStore()
	in := NewInput(s, PolicyRejectBlank)
	in.SetText("  hi  ")

	m, err := in.Send()
	require.NoError(t, err)
	assert.Equal(t, "  hi  ", m.Content(), "content is stored as typed")
	assert.Equal(t, "", in.Text())
}

func TestSendPolicy_String(t *testing.T) {
	assert.Equal(t, "allow-empty", PolicyAllowEmpty.String())
	assert.Equal(t, "reject-blank", PolicyRejectBlank.String())
	assert.Equal(t, "unknown", SendPolicy(42).String())
}
