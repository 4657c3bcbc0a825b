package memory

import (
	"context"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/syncopy/pkg/remote"
)

func testContext(t *testing.T) context.Context {
	return zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
}

func TestRegistry(t *testing.T) {
	ctx := testContext(t)

	client, err := remote.New(ctx, "memory")
	require.NoError(t, err)
	assert.IsType(t, &Platform{}, client)

	_, err = remote.New(ctx, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}

func TestPlatform_StoreEntity_CreateOrUpdate(t *testing.T) {
	ctx := testContext(t)
	p := New()

	project := p.AddProject("P", nil)
	file := p.AddFile(project, "a.txt", []byte("one"), nil)

	handles, err := p.ListFileHandles(ctx, file, 1)
	require.NoError(t, err)
	require.Len(t, handles, 1)

	second := p.AddFileVersion(file, []byte("two"))
	assert.Equal(t, 2, second)

	latest, err := p.GetEntity(ctx, file, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, latest.VersionNumber)

	v1 := 1
	first, err := p.GetEntity(ctx, file, &v1)
	require.NoError(t, err)
	assert.Equal(t, handles[0].ID, first.DataFileHandleID)

	stored, err := p.StoreEntity(ctx, &remote.Entity{
		Name:             "a.txt",
		ParentID:         project,
		ConcreteType:     remote.TypeFile,
		DataFileHandleID: handles[0].ID,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, file, stored.ID, "same name should update the existing file")
	assert.Equal(t, 3, stored.VersionNumber)
	assert.Len(t, p.Children(project), 1)
}

func TestPlatform_StoreEntity_Errors(t *testing.T) {
	ctx := testContext(t)
	p := New()
	project := p.AddProject("P", nil)
	target := p.AddFolder(project, "F", nil)
	p.Delete(target)

	_, err := p.StoreEntity(ctx, &remote.Entity{
		Name:         "L",
		ParentID:     project,
		ConcreteType: remote.TypeLink,
		LinksTo:      &remote.Reference{TargetID: target},
	}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, remote.ErrNotFound), "missing link target should be not found")

	_, err = p.StoreEntity(ctx, &remote.Entity{Name: "x", ParentID: "syn1", ConcreteType: remote.TypeFolder}, nil)
	assert.True(t, errors.Is(err, remote.ErrNotFound), "missing parent should be not found")

	_, err = p.StoreEntity(ctx, &remote.Entity{Name: "x", ParentID: project, ConcreteType: remote.TypeFile, DataFileHandleID: "42"}, nil)
	assert.Error(t, err)
}

func TestPlatform_Provenance(t *testing.T) {
	ctx := testContext(t)
	p := New()
	project := p.AddProject("P", nil)
	folder := p.AddFolder(project, "F", nil)

	_, err := p.GetProvenance(ctx, folder, nil)
	assert.True(t, errors.Is(err, remote.ErrNotFound))

	stored, err := p.StoreEntity(ctx, &remote.Entity{Name: "G", ParentID: project, ConcreteType: remote.TypeFolder}, &remote.Activity{Name: "copy"})
	require.NoError(t, err)

	a, err := p.GetProvenance(ctx, stored.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "copy", a.Name)
	assert.NotEmpty(t, a.ID)
}

func TestPlatform_DownloadUpload(t *testing.T) {
	ctx := testContext(t)
	p := New()
	project := p.AddProject("P", nil)
	file := p.AddFileOwnedBy(project, "data.csv", "other", []byte("a,b\n"), nil)

	dir := t.TempDir()
	path, err := p.DownloadFile(ctx, file, 1, dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))

	h, err := p.UploadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, DefaultUser.OwnerID, h.CreatedBy)
	assert.Equal(t, "data.csv", h.FileName)
	assert.Equal(t, 1, p.Uploads())

	ext := p.AddExternalFile(project, "remote.bin", "other", "https://example.org/remote.bin")
	_, err = p.DownloadFile(ctx, ext, 1, dir)
	assert.Error(t, err)
}

func TestPlatform_Tables(t *testing.T) {
	ctx := testContext(t)
	p := New()
	project := p.AddProject("P", nil)
	table := p.AddTable(project, "T", []string{"c1", "c2"}, [][]string{{"1", "2"}}, nil)

	data, err := p.QueryTable(ctx, table)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, data.Headers)
	assert.Equal(t, 1, data.Len())

	_, err = p.StoreTable(ctx, &remote.Entity{Name: "U", ParentID: project, ConcreteType: remote.TypeTable, ColumnIDs: []string{"c1"}}, data)
	assert.Error(t, err, "header count must match columns")
}

func TestPlatform_Wikis(t *testing.T) {
	ctx := testContext(t)
	p := New()
	project := p.AddProject("P", nil)
	other := p.AddProject("Q", nil)

	_, err := p.GetWikiHeaders(ctx, project)
	assert.True(t, errors.Is(err, remote.ErrNotFound))

	root := p.AddWiki(project, "", "Home", "hello", map[string][]byte{"img.png": []byte("png")})
	child := p.AddWiki(project, root, "Child", "see "+project, nil)

	headers, err := p.GetWikiHeaders(ctx, project)
	require.NoError(t, err)
	assert.Equal(t, []remote.WikiHeader{
		{ID: root, Title: "Home"},
		{ID: child, Title: "Child", ParentID: root},
	}, headers)

	_, err = p.StoreWiki(ctx, &remote.WikiPage{OwnerID: project, Title: "Second root"})
	assert.Error(t, err, "an owner has one root page")

	_, err = p.GetWiki(ctx, other, root)
	assert.True(t, errors.Is(err, remote.ErrNotFound), "pages are scoped to their owner")

	attachments, err := p.ListWikiAttachments(ctx, project, root)
	require.NoError(t, err)
	require.Len(t, attachments, 1)

	path, err := p.DownloadWikiAttachment(ctx, project, root, "img.png", t.TempDir())
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	updated, err := p.StoreWiki(ctx, &remote.WikiPage{ID: child, OwnerID: project, Title: "Child", Markdown: "changed"})
	require.NoError(t, err)
	assert.Equal(t, root, updated.ParentID, "updates keep the page's parent")
}
