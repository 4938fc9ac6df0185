package interpret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCommands(t *testing.T) {
	t.Run("near miss ranks the intended phrasing first", func(t *testing.T) {
		got := SuggestCommands("pague 200 de gasolna", 3)
		require.Len(t, got, 3)
		assert.Equal(t, "pague 200 de gasolina", got[0])
	})

	t.Run("limit caps the result", func(t *testing.T) {
		assert.Len(t, SuggestCommands("hola", 2), 2)
	})

	t.Run("non-positive limit returns everything", func(t *testing.T) {
		assert.Len(t, SuggestCommands("hola", 0), len(commandExamples))
	})

	t.Run("limit beyond the catalog is clamped", func(t *testing.T) {
		assert.Len(t, SuggestCommands("hola", 100), len(commandExamples))
	})
}

// Every suggested phrasing must actually classify to the action it claims,
// otherwise the hint sends the user into the fallback again.
func TestCommandExamplesClassify(t *testing.T) {
	c := NewClassifier()
	for _, ex := range commandExamples {
		t.Run(ex.phrase, func(t *testing.T) {
			assert.Equal(t, ex.action, c.Classify(ex.phrase).Type)
		})
	}
}
