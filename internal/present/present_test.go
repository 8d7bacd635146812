package present

import (
	"errors"
	"strings"
	"testing"

	"github.com/lengau/basedir"
)

func TestError(t *testing.T) {
	escapeErr := func() error {
		_, err := basedir.EnsureResource("/home", "/")
		return err
	}()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain error passes through",
			err:  errors.New("something broke"),
			want: "something broke",
		},
		{
			name: "path escape gets a hint",
			err:  escapeErr,
			want: "must stay inside the base directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Error(tt.err)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Error() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}
