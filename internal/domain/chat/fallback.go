package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/FACorreiaa/contabot/internal/domain/ledger"
)

// TemplateFallback is the default conversational collaborator: a static
// template over the financial snapshot plus command suggestions. It stands
// in for the generative assistant, which lives outside this service.
type TemplateFallback struct{}

// NewTemplateFallback creates the template responder.
func NewTemplateFallback() *TemplateFallback {
	return &TemplateFallback{}
}

// Respond builds a help message from the snapshot and suggestions.
func (f *TemplateFallback) Respond(_ context.Context, _ string, snapshot ledger.Snapshot, suggestions []string) (string, error) {
	var b strings.Builder
	b.WriteString("No encontré una acción en tu mensaje.\n")
	if len(suggestions) > 0 {
		b.WriteString("Puedes intentar, por ejemplo:\n")
		for _, s := range suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	b.WriteString("\nEste es el estado de tus finanzas:\n")
	b.WriteString(snapshot.Render())
	return b.String(), nil
}
