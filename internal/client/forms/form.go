// Package forms implements the per-page form-state controllers. One
// parameterized Form type replaces the copy-pasted page scripts of the web
// client: a page describes its fields, validators and uniqueness checks, and
// submit enablement falls out as a pure conjunction of the field flags.
package forms

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/amumal/amumal-cli/internal/client/api"
)

// HelperKind classifies a field's inline status message.
type HelperKind int

const (
	HelperNone HelperKind = iota
	HelperError
	HelperSuccess
)

// Helper is the inline per-field status message.
type Helper struct {
	Text string
	Kind HelperKind
}

func errorHelper(text string) Helper   { return Helper{Text: text, Kind: HelperError} }
func successHelper(text string) Helper { return Helper{Text: text, Kind: HelperSuccess} }

// FieldKind selects the validation behavior of a field.
type FieldKind int

const (
	// FieldFormat runs a local predicate on blur.
	FieldFormat FieldKind = iota
	// FieldUnique runs the predicate, then a server availability check.
	FieldUnique
	// FieldRequired only needs a non-blank value; validated per keystroke.
	FieldRequired
	// FieldConfirm must equal another field; revalidated when either changes.
	FieldConfirm
)

// CheckFunc performs the server round-trip for a uniqueness-checked field.
type CheckFunc func(ctx context.Context, value string) api.CheckStatus

// Messages are the helper texts for one field's validation outcomes.
type Messages struct {
	Required    string
	Format      string
	Taken       string
	CheckFailed string
	Available   string
}

type field struct {
	kind     FieldKind
	validate func(string) bool
	check    CheckFunc
	messages Messages
	initial  string
	isEdit   bool // value equal to initial skips the availability round-trip
	maxLen   int  // truncate while typing; 0 means unlimited
	matches  string
	trim     bool

	value     string
	valid     bool
	available bool
	filled    bool
	touched   bool
	helper    Helper
}

// Form tracks the validity flags of a page's fields and derives submit
// enablement. All mutations are synchronous; the only suspension point is
// the availability round-trip inside Blur.
type Form struct {
	fields       map[string]*field
	submit       []string
	formHelper   Helper
	requiredHint string
}

func newForm() *Form {
	return &Form{fields: map[string]*field{}}
}

func (f *Form) addField(name string, fld *field) {
	f.fields[name] = fld
	f.submit = append(f.submit, name)
}

func (f *Form) get(name string) *field {
	fld, ok := f.fields[name]
	if !ok {
		panic("forms: unknown field " + name)
	}
	return fld
}

// Value returns the field's current value, trimmed when the field trims.
func (f *Form) Value(name string) string {
	fld := f.get(name)
	if fld.trim {
		return strings.TrimSpace(fld.value)
	}
	return fld.value
}

// Helper returns the field's current inline status message.
func (f *Form) Helper(name string) Helper {
	return f.get(name).helper
}

// FormHelper returns the form-level status message.
func (f *Form) FormHelper() Helper {
	return f.formHelper
}

// SetFormHelper sets the form-level status message (submit failures).
func (f *Form) SetFormHelper(h Helper) {
	f.formHelper = h
}

// SetValue records a keystroke-level edit. Required fields revalidate
// immediately; uniqueness-checked fields lose their availability until the
// next Blur; confirm fields tracking this one revalidate.
func (f *Form) SetValue(name, value string) {
	fld := f.get(name)

	if fld.maxLen > 0 && utf8.RuneCountInString(value) > fld.maxLen {
		value = string([]rune(value)[:fld.maxLen])
	}
	fld.value = value

	switch fld.kind {
	case FieldRequired:
		fld.filled = strings.TrimSpace(value) != ""
	case FieldUnique:
		// Availability is only trustworthy right after a check.
		fld.available = false
	case FieldConfirm:
		f.revalidateConfirm(name, fld)
	}

	// Typing into any field retracts a stale submit-failure message.
	f.formHelper = Helper{}

	f.revalidateDependents(name)
	f.updateRequiredHint()
}

// Blur runs the field's defocus validation. For uniqueness-checked fields
// this includes the availability round-trip, skipped when the value matches
// the originally loaded one on an edit page.
func (f *Form) Blur(ctx context.Context, name string) {
	fld := f.get(name)
	fld.touched = true

	switch fld.kind {
	case FieldFormat:
		f.blurFormat(fld)
	case FieldUnique:
		f.blurUnique(ctx, fld)
	case FieldConfirm:
		f.revalidateConfirm(name, fld)
	case FieldRequired:
		fld.filled = strings.TrimSpace(fld.value) != ""
	}

	f.revalidateDependents(name)
	f.updateRequiredHint()
}

func (f *Form) blurFormat(fld *field) {
	v := fld.value
	if fld.trim {
		v = strings.TrimSpace(v)
	}

	switch {
	case v == "" && fld.messages.Required != "":
		fld.valid = false
		fld.helper = errorHelper(fld.messages.Required)
	case !fld.validate(v):
		fld.valid = false
		fld.helper = errorHelper(fld.messages.Format)
	default:
		fld.valid = true
		fld.helper = Helper{}
	}
}

func (f *Form) blurUnique(ctx context.Context, fld *field) {
	v := strings.TrimSpace(fld.value)
	fld.available = false

	if v == "" {
		fld.valid = false
		msg := fld.messages.Required
		if msg == "" {
			msg = fld.messages.Format
		}
		fld.helper = errorHelper(msg)
		return
	}
	if !fld.validate(v) {
		fld.valid = false
		fld.helper = errorHelper(fld.messages.Format)
		return
	}

	fld.valid = true

	if fld.isEdit && v == fld.initial {
		fld.available = true
		fld.helper = Helper{}
		return
	}

	switch fld.check(ctx, v) {
	case api.CheckAvailable:
		fld.available = true
		fld.helper = successHelper(fld.messages.Available)
	case api.CheckTaken:
		fld.available = false
		fld.helper = errorHelper(fld.messages.Taken)
	case api.CheckRejected:
		// The server refused the format outright; downgrade validity too.
		fld.valid = false
		fld.helper = errorHelper(fld.messages.Format)
	default:
		fld.available = false
		fld.helper = errorHelper(fld.messages.CheckFailed)
	}
}

func (f *Form) revalidateConfirm(name string, fld *field) {
	primary := f.get(fld.matches)

	switch {
	case fld.value == "":
		fld.valid = false
		if fld.touched {
			fld.helper = errorHelper(fld.messages.Required)
		}
	case fld.value != primary.value:
		fld.valid = false
		if fld.touched {
			fld.helper = errorHelper(fld.messages.Format)
		}
	default:
		fld.valid = true
		fld.helper = Helper{}
	}
}

// revalidateDependents refreshes confirm fields that track the given field.
func (f *Form) revalidateDependents(name string) {
	for depName, dep := range f.fields {
		if dep.kind == FieldConfirm && dep.matches == name {
			f.revalidateConfirm(depName, dep)
		}
	}
}

func (f *Form) updateRequiredHint() {
	if f.requiredHint == "" {
		return
	}
	for _, fld := range f.fields {
		if fld.kind == FieldRequired && !fld.filled {
			f.formHelper = errorHelper(f.requiredHint)
			return
		}
	}
	if f.formHelper.Text == f.requiredHint {
		f.formHelper = Helper{}
	}
}

// CanSubmit is the pure conjunction of every field's relevant flags.
func (f *Form) CanSubmit() bool {
	for _, name := range f.submit {
		fld := f.fields[name]
		switch fld.kind {
		case FieldFormat, FieldConfirm:
			if !fld.valid {
				return false
			}
		case FieldUnique:
			if !fld.valid || !fld.available {
				return false
			}
		case FieldRequired:
			if !fld.filled {
				return false
			}
		}
	}
	return true
}
