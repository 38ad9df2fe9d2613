package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// parseIntOrZero coerces a numeric form field. Parse failures recover to
// zero and are never surfaced; the record is created regardless.
func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseDecimalOrZero(s string) decimal.Decimal {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// parseDateOrZero reads a YYYY-MM-DD field; anything unparseable becomes
// the zero time.
func parseDateOrZero(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// validationMessage flattens validator errors into one inline message,
// naming the first failing field.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	fe := errs[0]
	if fe.Tag() == "email" {
		return fe.Field() + " must be a valid email address"
	}
	return fe.Field() + " is required"
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 80
	in.Width = 36
	return in
}

// updateInputs forwards a message to every input and collects commands.
func updateInputs(inputs []textinput.Model, msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(inputs))
	for i := range inputs {
		inputs[i], cmds[i] = inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// cycleFocus moves focus to the input at index next, blurring the rest.
func cycleFocus(inputs []textinput.Model, next int) int {
	if len(inputs) == 0 {
		return 0
	}
	next = ((next % len(inputs)) + len(inputs)) % len(inputs)
	for i := range inputs {
		if i == next {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
	return next
}
