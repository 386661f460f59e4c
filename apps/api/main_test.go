package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core/user"
	sessionstore "github.com/trezcool/escolar/storage/session"
	"github.com/trezcool/escolar/tests"
)

func Test_printToken(t *testing.T) {
	conf := testutil.Config()

	tests := []struct {
		name    string
		args    []string
		want    user.Identity
		wantErr bool
	}{
		{
			name: "defaults",
			want: user.Identity{Group: user.GroupAdmin, ID: 1, FullName: "Administrador"},
		},
		{
			name: "teacher",
			args: []string{"-group", user.GroupTeacher, "-id", "2", "-name", "Ada Lovelace"},
			want: user.Identity{Group: user.GroupTeacher, ID: 2, FullName: "Ada Lovelace"},
		},
		{
			name:    "unknown group",
			args:    []string{"-group", "root"},
			wantErr: true,
		},
		{
			name:    "bad id",
			args:    []string{"-id", "x"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printToken(conf, tt.args, &out)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if !assert.NoError(t, err) {
				return
			}

			token := strings.TrimSpace(out.String())
			got, err := sessionstore.FromToken(token)
			assert.NoError(t, err)
			tt.want.Token = token
			assert.Equal(t, tt.want, got)
		})
	}
}
