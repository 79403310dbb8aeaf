package dal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
)

// UsersFile keeps the set of user chat IDs as a JSON array in a flat file.
// Every save rewrites the whole file in place.
type UsersFile struct {
	path string
}

func NewUsersFile(path string) *UsersFile {
	return &UsersFile{path: path}
}

// LoadUsers returns an empty set and nil error when the file does not exist yet.
func (f *UsersFile) LoadUsers() (map[int64]struct{}, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return make(map[int64]struct{}), nil
		}
		return make(map[int64]struct{}), fmt.Errorf("read users file: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return make(map[int64]struct{}), fmt.Errorf("unmarshal users: %w", err)
	}

	res := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res, nil
}

func (f *UsersFile) SaveUsers(users map[int64]struct{}) error {
	ids := make([]int64, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0600); err != nil { //nolint:mnd // owner only
		return fmt.Errorf("write users file: %w", err)
	}
	return nil
}
