package storefront

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-playground/validator/v10"
)

// ContactRequest is a contact form submission. It is validated and
// acknowledged locally; nothing is sent anywhere.
type ContactRequest struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,min=10,max=2000"`
}

var (
	contactValidatorOnce sync.Once
	contactValidator     *validator.Validate
)

func contactValidatorInstance() *validator.Validate {
	contactValidatorOnce.Do(func() {
		contactValidator = validator.New()
	})
	return contactValidator
}

// Validate returns a human-readable error for the first invalid field.
func (r ContactRequest) Validate() error {
	err := contactValidatorInstance().Struct(r)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}

	fe := ves[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "email":
		return fmt.Errorf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Errorf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fe.Field())
	}
}

const (
	fieldName = iota
	fieldEmail
	fieldMessage
	fieldCount
)

// contactForm holds the three contact inputs and which one has focus.
type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	active  int
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "Your full name"
	name.Prompt = ""
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "your.email@example.com"
	email.Prompt = ""
	email.CharLimit = 254

	message := textarea.New()
	message.Placeholder = "Tell us about your project..."
	message.ShowLineNumbers = false
	message.SetHeight(4)
	message.CharLimit = 2000

	return contactForm{name: name, email: email, message: message}
}

func (f *contactForm) setWidth(width int) {
	w := max(width, 20)
	f.name.Width = w
	f.email.Width = w
	f.message.SetWidth(w)
}

// focus gives keyboard focus to the active field.
func (f *contactForm) focus() tea.Cmd {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()

	switch f.active {
	case fieldEmail:
		return f.email.Focus()
	case fieldMessage:
		return f.message.Focus()
	default:
		return f.name.Focus()
	}
}

func (f *contactForm) blur() {
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
}

func (f *contactForm) move(delta int) tea.Cmd {
	f.active = (f.active + delta + fieldCount) % fieldCount
	return f.focus()
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.active {
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	default:
		f.name, cmd = f.name.Update(msg)
	}
	return cmd
}

func (f contactForm) request() ContactRequest {
	return ContactRequest{
		Name:    strings.TrimSpace(f.name.Value()),
		Email:   strings.TrimSpace(f.email.Value()),
		Message: strings.TrimSpace(f.message.Value()),
	}
}

func (f *contactForm) reset() {
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.active = fieldName
}
