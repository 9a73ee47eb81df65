package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubPath(t *testing.T) {
	var testCases = []struct {
		from, to  string
		expect    string
		expectErr bool
	}{
		{from: "a", to: "a/b", expect: "/b"},
		{from: "a/b", to: "/a/b", expect: "/"},
		{from: "/a", to: "/a/b/c/", expect: "/b/c"},
		{from: "/a/b/", to: "c/d", expectErr: true},
		{from: "/a/b", to: "/a/bc", expectErr: true},
	}
	for _, testCase := range testCases {
		actual, err := SubPath(testCase.from, testCase.to)
		if testCase.expectErr {
			assert.Error(t, err, testCase.from+" "+testCase.to)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, testCase.expect, actual, testCase.from+" "+testCase.to)
	}
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "/a/b/c/d", Join("a/b", "c/d"))
	assert.Equal(t, "/a/b/c/d", Join("/a/b/", "c/d"))
	assert.Equal(t, "", Join())
}

func TestRemoveDotExt(t *testing.T) {
	assert.Equal(t, "backup.db", RemoveDotExt(".backup.db.icloud"))
	assert.Equal(t, "/Documents/backup/backup.db", RemoveDotExt("/Documents/backup/.backup.db.icloud"))
	assert.Equal(t, "/Documents/backup.db", RemoveDotExt("/Documents/backup.db"))
	assert.True(t, IsPlaceholder("/a/.b.txt.icloud"))
	assert.False(t, IsPlaceholder("/a/b.txt"))
}

func TestExt(t *testing.T) {
	assert.Equal(t, "txt", Ext("a/b/data.txt"))
	assert.Equal(t, "gz", Ext("a.tar.gz"))
	assert.Equal(t, "noext", Ext("noext"))
}
