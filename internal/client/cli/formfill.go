package cli

import (
	"context"
	"fmt"

	"github.com/amumal/amumal-cli/internal/client/forms"
)

// maxFieldAttempts bounds the retry loop for a single field prompt.
const maxFieldAttempts = 3

// fillField prompts for one form field, feeds the input through the form's
// validation and prints the resulting helper text. Invalid input is re-prompted
// a few times before giving up on the whole flow.
func (a *App) fillField(ctx context.Context, f *forms.Form, name, label string, secret bool) bool {
	for attempt := 0; attempt < maxFieldAttempts; attempt++ {
		var (
			value string
			err   error
		)
		if secret {
			value, err = getPassword(label, a.out)
		} else {
			value, err = getSimpleText(a.reader, label, a.out)
		}
		if err != nil {
			return false
		}

		f.SetValue(name, value)
		f.Blur(ctx, name)

		h := f.Helper(name)
		if h.Text != "" {
			fmt.Fprintln(a.out, h.Text)
		}
		if h.Kind != forms.HelperError {
			return true
		}
	}
	return false
}
