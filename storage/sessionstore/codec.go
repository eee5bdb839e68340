package sessionstore

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/session"
)

func encodeUser(usr session.User) ([]byte, error) {
	data, err := json.Marshal(usr)
	return data, errors.Wrap(err, "encoding session user")
}

func decodeUser(data []byte) (session.User, error) {
	var usr session.User
	if err := json.Unmarshal(data, &usr); err != nil {
		return session.User{}, errors.Wrap(session.ErrCorruptSession, err.Error())
	}
	return usr, nil
}
