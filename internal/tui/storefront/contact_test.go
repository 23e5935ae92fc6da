package storefront

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactRequestValidate(t *testing.T) {
	t.Parallel()

	valid := ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hello from the terminal"}

	cases := []struct {
		name    string
		mutate  func(r *ContactRequest)
		wantErr string
	}{
		{"valid", func(*ContactRequest) {}, ""},
		{"missing name", func(r *ContactRequest) { r.Name = "" }, "Name is required"},
		{"bad email", func(r *ContactRequest) { r.Email = "ada" }, "Email must be a valid email address"},
		{"short message", func(r *ContactRequest) { r.Message = "hi" }, "Message must be at least 10 characters"},
		{"long name", func(r *ContactRequest) { r.Name = strings.Repeat("a", 101) }, "Name must be at most 100 characters"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}
