package sessionstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"

	"github.com/trezcool/escolar/core"
	"github.com/trezcool/escolar/core/user"
)

var ErrInvalidToken = errors.New("invalid session token")

// Claims are the session claims carried by the API token.
type Claims struct {
	UserID   int    `json:"user_id"`
	Group    string `json:"group"`
	FullName string `json:"name"`
}

// FromToken reads the session identity out of token without verifying its signature:
// only the API can do that.
func FromToken(token string) (user.Identity, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return user.Identity{}, ErrInvalidToken
	}

	parsed, _, err := new(jwt.Parser).ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return user.Identity{}, errors.Wrap(ErrInvalidToken, err.Error())
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return user.Identity{}, ErrInvalidToken
	}

	var claims Claims
	if err = core.Decode(map[string]interface{}(mapClaims), &claims); err != nil {
		return user.Identity{}, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !user.IsValidGroup(claims.Group) {
		return user.Identity{}, errors.Wrapf(ErrInvalidToken, "unknown group %q", claims.Group)
	}
	return user.Identity{
		Token:    token,
		Group:    claims.Group,
		FullName: claims.FullName,
		ID:       claims.UserID,
	}, nil
}

// Store keeps the session identity in a JSON file between CLI runs.
type Store struct {
	path string
}

func NewStore(conf *core.Config) *Store {
	return &Store{path: conf.SessionFile}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the saved identity, or an empty one when nobody is logged in.
func (s *Store) Load() (user.Identity, error) {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return user.Identity{}, nil
		}
		return user.Identity{}, errors.Wrap(err, "reading session")
	}

	var id user.Identity
	if err = json.Unmarshal(data, &id); err != nil {
		return user.Identity{}, errors.Wrap(err, "decoding session")
	}
	return id, nil
}

func (s *Store) Save(id user.Identity) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	data, err := json.MarshalIndent(id, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	return errors.Wrap(ioutil.WriteFile(s.path, data, 0o600), "writing session")
}

// Clear logs out. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session")
	}
	return nil
}
