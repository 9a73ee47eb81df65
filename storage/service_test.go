package storage

import (
	"context"
	"errors"
	"os"
	"path"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/cloudbridge/schema"
)

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()
	root := t.TempDir()
	container := filepath.Join(root, "container")
	srv := New(&Config{ContainerURL: "file://" + container, ContainerName: "Test", LocalURL: "file://" + filepath.Join(root, "local")})
	require.NoError(t, srv.Init(context.Background()))
	require.True(t, srv.Available(context.Background()))
	return srv, container
}

func assertReason(t *testing.T, err error, reason string, msgAndArgs ...interface{}) {
	t.Helper()
	var storageErr *Error
	if assert.True(t, errors.As(err, &storageErr), msgAndArgs...) {
		assert.Equal(t, reason, storageErr.Reason(), msgAndArgs...)
	}
}

func TestService_WriteReadFile(t *testing.T) {
	ctx := context.Background()
	srv, container := newTestService(t)

	require.NoError(t, srv.WriteFile(ctx, "/docs/a.txt", "hello", false))
	content, err := srv.ReadFile(ctx, "docs/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)

	err = srv.WriteFile(ctx, "/docs/a.txt", "again", false)
	assertReason(t, err, schema.ReasonFileExist)

	require.NoError(t, srv.WriteFile(ctx, "/docs/a.txt", "again", true))
	content, err = srv.ReadFile(ctx, filepath.Join(container, "docs/a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "again", content, "absolute in-container path")

	_, err = srv.ReadFile(ctx, "/docs/missing.txt")
	assertReason(t, err, schema.ReasonFileNotExist)
}

func TestService_Dirs(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)

	require.NoError(t, srv.CreateDir(ctx, "/a/b"))
	require.NoError(t, srv.CreateDir(ctx, "/a/b"), "create is idempotent")
	require.NoError(t, srv.WriteFile(ctx, "/a/one.txt", "1", false))

	children, err := srv.ReadDir(ctx, "/a")
	require.NoError(t, err)
	var names []string
	for _, child := range children {
		names = append(names, path.Base(child))
	}
	sort.Strings(names)
	assert.Equal(t, []string{"b", "one.txt"}, names)

	_, err = srv.ReadDir(ctx, "/nope")
	assertReason(t, err, schema.ReasonDirNotExist)

	require.NoError(t, srv.MoveDir(ctx, "/a", "/moved"))
	exists, err := srv.Exist(ctx, "/moved/one.txt")
	require.NoError(t, err)
	assert.True(t, exists)
	exists, _ = srv.Exist(ctx, "/a")
	assert.False(t, exists)

	err = srv.MoveDir(ctx, "/nope", "/other")
	assertReason(t, err, schema.ReasonMoveDir)
}

func TestService_Copy(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)
	require.NoError(t, srv.WriteFile(ctx, "/src.txt", "source", false))
	require.NoError(t, srv.WriteFile(ctx, "/dest.txt", "dest", false))

	err := srv.Copy(ctx, "/src.txt", "/dest.txt", false)
	assertReason(t, err, schema.ReasonDestExist)

	require.NoError(t, srv.Copy(ctx, "/src.txt", "/dest.txt", true))
	content, err := srv.ReadFile(ctx, "/dest.txt")
	require.NoError(t, err)
	assert.Equal(t, "source", content)

	err = srv.Copy(ctx, "/src.txt", "/missing/dest.txt", false)
	assertReason(t, err, schema.ReasonCopy)
	assert.Contains(t, err.Error(), "you need create it first")

	require.NoError(t, srv.Copy(ctx, "/src.txt", "src.txt", true), "copy onto itself")
	content, err = srv.ReadFile(ctx, "/src.txt")
	require.NoError(t, err)
	assert.Equal(t, "source", content)

	err = srv.Copy(ctx, "/none.txt", "/dest.txt", true)
	assertReason(t, err, schema.ReasonCopy)
	content, err = srv.ReadFile(ctx, "/dest.txt")
	require.NoError(t, err, "failed replace keeps destination")
	assert.Equal(t, "source", content)

	children, err := srv.ReadDir(ctx, "/")
	require.NoError(t, err)
	assert.Len(t, children, 2, "no staged copies left behind")
}

func TestService_AvailableDoesNotCreate(t *testing.T) {
	ctx := context.Background()
	container := filepath.Join(t.TempDir(), "container")
	srv := New(&Config{ContainerURL: "file://" + container})
	assert.False(t, srv.Available(ctx))
	_, err := os.Stat(container)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, srv.Init(ctx))
	assert.True(t, srv.Available(ctx))
}

func TestService_UnlinkStat(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)
	require.NoError(t, srv.WriteFile(ctx, "/f.txt", "12345", false))

	stat, err := srv.Stat(ctx, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, "f.txt", stat.Name)
	assert.Equal(t, int64(5), stat.Size)
	assert.True(t, stat.IsInCloud)
	assert.False(t, stat.IsDir)
	assert.Equal(t, "Test", stat.ContainerDisplayName)
	assert.Equal(t, schema.DownloadStatusNotDownloaded, stat.DownloadStatus)
	assert.NotZero(t, stat.ModifyTimestamp)

	require.NoError(t, srv.Unlink(ctx, "/f.txt"))
	require.NoError(t, srv.Unlink(ctx, "/f.txt"), "missing path is not an error")
	_, err = srv.Stat(ctx, "/f.txt")
	assertReason(t, err, schema.ReasonNotExist)
}

func TestService_UploadDownload(t *testing.T) {
	ctx := context.Background()
	srv, _ := newTestService(t)
	local := filepath.Join(t.TempDir(), "upload.txt")
	require.NoError(t, os.WriteFile(local, []byte("payload"), 0644))

	_, err := srv.Upload(ctx, "relative/upload.txt", "/upload.txt")
	assertReason(t, err, schema.ReasonInvalidPath)

	_, err = srv.Upload(ctx, local, "/nested/upload.txt")
	assertReason(t, err, schema.ReasonCopyToCloud)

	file, err := srv.Upload(ctx, local, "/upload.txt")
	require.NoError(t, err)
	assert.Equal(t, schema.GatheringUpload, file.Type)
	require.NotNil(t, file.Progress)
	assert.Equal(t, 100.0, *file.Progress)
	content, err := srv.ReadFile(ctx, "/upload.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", content)

	file, err = srv.Download(ctx, "/upload.txt")
	require.NoError(t, err)
	assert.Equal(t, schema.GatheringDownload, file.Type)
	stat, err := srv.Stat(ctx, "/upload.txt")
	require.NoError(t, err)
	assert.Equal(t, schema.DownloadStatusDownloaded, stat.DownloadStatus)

	_, err = srv.Download(ctx, "/none.txt")
	assertReason(t, err, schema.ReasonDownload)
}

func TestService_Unconfigured(t *testing.T) {
	ctx := context.Background()
	srv := New(&Config{})
	assert.False(t, srv.Available(ctx))
	assertReason(t, srv.Init(ctx), schema.ReasonContainerUnavailable)
	_, err := srv.ReadFile(ctx, "/a.txt")
	assertReason(t, err, schema.ReasonContainerUnavailable)
	_, err = srv.Exist(ctx, "/a.txt")
	assertReason(t, err, schema.ReasonContainerUnavailable)
}

func TestService_relative(t *testing.T) {
	srv := New(&Config{ContainerURL: "file:///data/container"})
	var testCases = []struct {
		location string
		expect   string
	}{
		{location: "a/b.txt", expect: "/a/b.txt"},
		{location: "/a/b.txt", expect: "/a/b.txt"},
		{location: "/data/container/a/b.txt", expect: "/a/b.txt"},
		{location: "/data/container", expect: "/"},
		{location: "/data/containers/x", expect: "/data/containers/x"},
		{location: "../../etc/passwd", expect: "/etc/passwd"},
		{location: "", expect: "/"},
	}
	for _, testCase := range testCases {
		actual, err := srv.relative(testCase.location)
		require.NoError(t, err)
		assert.Equal(t, testCase.expect, actual, testCase.location)
	}
}
