package sessionstore

import (
	"path/filepath"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-the-api-key"))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func TestFromToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"user_id": 4, "group": user.GroupStudent, "name": "Óscar Ruiz"})

	tests := []struct {
		name    string
		token   string
		want    user.Identity
		wantErr bool
	}{
		{name: "valid", token: token, want: user.Identity{Token: token, Group: user.GroupStudent, FullName: "Óscar Ruiz", ID: 4}},
		{name: "bearer prefix", token: "Bearer " + token + "\n", want: user.Identity{Token: token, Group: user.GroupStudent, FullName: "Óscar Ruiz", ID: 4}},
		{name: "empty", token: "  ", wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
		{name: "unknown group", token: signedToken(t, jwt.MapClaims{"user_id": 1, "group": "root"}), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromToken(tt.token)
			if tt.wantErr {
				assert.Equal(t, ErrInvalidToken, errors.Cause(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStore(t *testing.T) {
	store := NewStore(&core.Config{SessionFile: filepath.Join(t.TempDir(), "escolar", "session.json")})

	id, err := store.Load()
	assert.NoError(t, err)
	assert.False(t, user.IsAuthenticated(id))

	want := user.Identity{Token: "tok", Group: user.GroupAdmin, FullName: "Admin", ID: 1}
	assert.NoError(t, store.Save(want))

	id, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, want, id)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Clear())
	id, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, user.Identity{}, id)
}
