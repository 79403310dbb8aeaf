package dal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func set(ids ...int64) map[int64]struct{} {
	res := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res
}

func TestUsersFile_LoadUsers(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    map[int64]struct{}
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name:    "missing_file",
			content: nil,
			want:    set(),
			wantErr: assert.NoError,
		},
		{
			name:    "json_array",
			content: ptr("[3, 1, 2]"),
			want:    set(1, 2, 3),
			wantErr: assert.NoError,
		},
		{
			name:    "duplicates_collapse",
			content: ptr("[5, 5, 7]"),
			want:    set(5, 7),
			wantErr: assert.NoError,
		},
		{
			name:    "empty_array",
			content: ptr("[]"),
			want:    set(),
			wantErr: assert.NoError,
		},
		{
			name:    "corrupt",
			content: ptr("[1, 2"),
			want:    set(),
			wantErr: assert.Error,
		},
		{
			name:    "not_integers",
			content: ptr(`["a", "b"]`),
			want:    set(),
			wantErr: assert.Error,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "users.json")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0600))
			}

			got, err := NewUsersFile(path).LoadUsers()
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsersFile_SaveUsers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	f := NewUsersFile(path)

	require.NoError(t, f.SaveUsers(set(30, 10, 20)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[10, 20, 30]", string(data))

	// overwrites, does not append
	require.NoError(t, f.SaveUsers(set(40)))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[40]", string(data))
}

func TestUsersFile_RoundTrip(t *testing.T) {
	f := NewUsersFile(filepath.Join(t.TempDir(), "users.json"))

	for _, users := range []map[int64]struct{}{
		set(),
		set(1),
		set(-1001234567890, 42, 7_000_000_000),
	} {
		require.NoError(t, f.SaveUsers(users))
		got, err := f.LoadUsers()
		require.NoError(t, err)
		assert.Equal(t, users, got)
	}
}

func TestUsersFile_SaveUsers_Error(t *testing.T) {
	f := NewUsersFile(filepath.Join(t.TempDir(), "missing", "users.json"))
	err := f.SaveUsers(set(1))
	require.Error(t, err)
	assert.ErrorContains(t, err, "write users file: ")
}

func ptr[T any](v T) *T {
	return &v
}
