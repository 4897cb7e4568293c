package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestTranslator(t *testing.T) {
	tests := []struct {
		langs  []string
		tag    language.Tag
		status string
		empty  string
	}{
		{[]string{"en-US"}, language.English, "2 of 5 items selected", "No items"},
		{[]string{"de-AT,de;q=0.9"}, language.German, "2 von 5 Einträgen ausgewählt", "Keine Einträge"},
		{[]string{"fr"}, language.English, "2 of 5 items selected", "No items"},
	}
	for _, tt := range tests {
		t.Run(tt.langs[0], func(t *testing.T) {
			tr, err := New(tt.langs...)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tr.Tag())
			assert.Equal(t, tt.status, tr.SelectionStatus(2, 5))
			assert.Equal(t, tt.empty, tr.Empty())
			assert.NotEmpty(t, tr.Help())
		})
	}
}

func TestTranslator_Plural(t *testing.T) {
	tr, err := New("en")
	require.NoError(t, err)
	assert.Equal(t, "1 of 1 item selected", tr.SelectionStatus(1, 1))
	assert.Equal(t, "3 checked", tr.Checked(3))
}
