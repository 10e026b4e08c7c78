package vaw

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompressed(t *testing.T) {
	assert.True(t, IsCompressed("rhone.dat.gz"))
	assert.True(t, IsCompressed("RHONE.DAT.GZ"))
	assert.False(t, IsCompressed("rhone.dat"))
	assert.False(t, IsCompressed("gz"))
}

func TestCompress(t *testing.T) {
	assert := assert.New(t)

	src, err := os.ReadFile("testdata/rhone_lengthchange.dat")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "rhone_lengthchange.dat")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	gzPath, err := Compress(path)
	require.NoError(t, err)
	assert.Equal(path+".gz", gzPath)
	assert.NoFileExists(path, "source removed")
	assert.FileExists(gzPath)

	// compressed files are left alone
	same, err := Compress(gzPath)
	assert.NoError(err)
	assert.Equal(gzPath, same)

	// the compressed file reads the same
	lc, err := NewLengthChangeReader(gzPath, testGlaciers())
	require.NoError(t, err)
	assert.Equal("rhone", lc.Header().ShortName())
	src2, ok := lc.DataSource()
	assert.True(ok)
	assert.Equal("VAW / ETH Zurich, GLAMOS", src2)

	data, err := lc.ReadData()
	require.NoError(t, err)
	assert.Len(data, 3)
	assert.Equal(3, lc.NumDataLines())
}

func TestOpenFile_CorruptGzip(t *testing.T) {
	path := writeFile(t, "corrupt.dat.gz", "# Length change;rhone;1;Rhonegletscher;\n")
	_, err := NewLengthChangeReader(path, testGlaciers())
	assert.Error(t, err)
}
