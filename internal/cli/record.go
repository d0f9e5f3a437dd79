package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/pwcred/internal/auth"
	"github.com/dmitrijs2005/pwcred/internal/filex"
	"github.com/dmitrijs2005/pwcred/internal/models"
)

const recordPerm = 0o600

// loadRecord reads a user record, choosing the legacy type when the file
// stores the key under "pass".
func loadRecord(path string) (auth.Record, error) {
	var probe map[string]json.RawMessage
	if err := filex.ReadJSON(path, &probe); err != nil {
		return nil, err
	}

	if _, legacy := probe["pass"]; legacy {
		u := &models.LegacyUser{}
		if err := filex.ReadJSON(path, u); err != nil {
			return nil, err
		}
		return u, nil
	}

	u := &models.User{}
	if err := filex.ReadJSON(path, u); err != nil {
		return nil, err
	}
	return u, nil
}

func saveRecord(path string, rec auth.Record) error {
	if err := filex.WriteJSON(path, rec, recordPerm); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}
