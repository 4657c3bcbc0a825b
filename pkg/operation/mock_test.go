package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/gen/mockery"
	"github.com/walteh/syncopy/pkg/operation"
	"github.com/walteh/syncopy/pkg/remote"
)

func createMockEnv(t *testing.T) (context.Context, *mockery.MockClient_remote, *operation.Operator) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())

	client := mockery.NewMockClient_remote(t)
	op, err := operation.New(operation.Config{Client: client})
	require.NoError(t, err, "creating operator")

	return ctx, client, op
}

func TestCopy_RehostFailureRemovesScratch(t *testing.T) {
	ctx, client, op := createMockEnv(t)
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	file := &remote.Entity{ID: "syn3", Name: "reads.fastq", ParentID: "syn1", ConcreteType: remote.TypeFile, VersionNumber: 1, DataFileHandleID: "77"}

	client.EXPECT().GetEntity(mock.Anything, "syn3", (*int)(nil)).Return(file, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn9").Return([]remote.EntityHeader{}, nil)
	client.EXPECT().ListFileHandles(mock.Anything, "syn3", 1).Return([]remote.FileHandle{{ID: "77", CreatedBy: "someone-else"}}, nil)
	client.EXPECT().GetUserProfile(mock.Anything).Return(&remote.UserProfile{OwnerID: "me"}, nil)
	client.EXPECT().DownloadFile(mock.Anything, "syn3", 1, mock.Anything).
		RunAndReturn(func(ctx context.Context, id string, version int, dir string) (string, error) {
			path := filepath.Join(dir, "reads.fastq")
			require.NoError(t, os.WriteFile(path, []byte("ACGT"), 0o600))
			return path, nil
		})
	client.EXPECT().UploadFile(mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	opts := operation.DefaultOptions()
	opts.CopyWiki = false

	_, err := op.Copy(ctx, "syn3", "syn9", opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying file syn3")
	assert.Contains(t, err.Error(), "quota exceeded")

	assertEmptyDir(t, tmp)
}

func TestCopy_LinkStoreErrorIsFatal(t *testing.T) {
	ctx, client, op := createMockEnv(t)

	link := &remote.Entity{ID: "syn4", Name: "shortcut", ConcreteType: remote.TypeLink, LinksTo: &remote.Reference{TargetID: "syn2"}}

	client.EXPECT().GetEntity(mock.Anything, "syn4", (*int)(nil)).Return(link, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn9").Return(nil, nil)
	client.EXPECT().StoreEntity(mock.Anything, mock.Anything, (*remote.Activity)(nil)).Return(nil, errors.New("internal server error"))

	opts := operation.DefaultOptions()
	opts.CopyWiki = false

	_, err := op.Copy(ctx, "syn4", "syn9", opts)
	require.Error(t, err)
	assert.False(t, errors.Is(err, operation.ErrBrokenLinkTarget), "only missing targets are tolerated")
	assert.Contains(t, err.Error(), "copying link syn4")
}

func TestCopy_EmptyTableStoresSchemaOnly(t *testing.T) {
	ctx, client, op := createMockEnv(t)

	table := &remote.Entity{ID: "syn5", Name: "samples", ConcreteType: remote.TypeTable, ColumnIDs: []string{"11", "12"}, Annotations: map[string][]string{"k": {"v"}}}

	client.EXPECT().GetEntity(mock.Anything, "syn5", (*int)(nil)).Return(table, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn9").Return(nil, nil)
	client.EXPECT().QueryTable(mock.Anything, "syn5").Return(&remote.TableData{Headers: []string{"11", "12"}}, nil)
	client.EXPECT().StoreEntity(mock.Anything, mock.MatchedBy(func(e *remote.Entity) bool {
		return e.ConcreteType == remote.TypeTable &&
			e.ParentID == "syn9" &&
			e.Annotations == nil &&
			assert.ObjectsAreEqual([]string{"11", "12"}, e.ColumnIDs)
	}), (*remote.Activity)(nil)).Return(&remote.Entity{ID: "syn6"}, nil)

	opts := operation.DefaultOptions()
	opts.CopyWiki = false

	m, err := op.Copy(ctx, "syn5", "syn9", opts)
	require.NoError(t, err)

	got, _ := m.Get("syn5")
	assert.Equal(t, "syn6", got)
}

func TestCopy_UserProfileFetchedOnce(t *testing.T) {
	ctx, client, op := createMockEnv(t)

	folder := &remote.Entity{ID: "syn2", Name: "data", ConcreteType: remote.TypeFolder}
	files := map[string]*remote.Entity{
		"syn3": {ID: "syn3", Name: "a.txt", ConcreteType: remote.TypeFile, VersionNumber: 1, DataFileHandleID: "31"},
		"syn4": {ID: "syn4", Name: "b.txt", ConcreteType: remote.TypeFile, VersionNumber: 1, DataFileHandleID: "41"},
	}

	client.EXPECT().GetEntity(mock.Anything, "syn2", (*int)(nil)).Return(folder, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn9").Return(nil, nil)
	client.EXPECT().StoreEntity(mock.Anything, mock.MatchedBy(func(e *remote.Entity) bool { return e.ConcreteType == remote.TypeFolder }), (*remote.Activity)(nil)).
		Return(&remote.Entity{ID: "syn20"}, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn2").Return([]remote.EntityHeader{
		{ID: "syn3", Name: "a.txt", Type: remote.TypeFile},
		{ID: "syn4", Name: "b.txt", Type: remote.TypeFile},
	}, nil)
	client.EXPECT().ListChildren(mock.Anything, "syn20").Return(nil, nil)
	for id, f := range files {
		client.EXPECT().GetEntity(mock.Anything, id, (*int)(nil)).Return(f, nil)
		client.EXPECT().ListFileHandles(mock.Anything, id, 1).Return([]remote.FileHandle{{ID: f.DataFileHandleID, CreatedBy: "me"}}, nil)
	}
	client.EXPECT().GetUserProfile(mock.Anything).Return(&remote.UserProfile{OwnerID: "me"}, nil).Once()
	client.EXPECT().StoreEntity(mock.Anything, mock.MatchedBy(func(e *remote.Entity) bool { return e.ConcreteType == remote.TypeFile }), mock.Anything).
		RunAndReturn(func(ctx context.Context, e *remote.Entity, a *remote.Activity) (*remote.Entity, error) {
			assert.Equal(t, "syn20", e.ParentID)
			assert.NotNil(t, a, "traceback provenance should be attached")
			return &remote.Entity{ID: "new-" + e.DataFileHandleID}, nil
		})

	opts := operation.DefaultOptions()
	opts.CopyWiki = false

	m, err := op.Copy(ctx, "syn2", "syn9", opts)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"syn2": "syn20", "syn3": "new-31", "syn4": "new-41"}, m.Map())
}
