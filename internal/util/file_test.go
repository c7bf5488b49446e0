package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileHasPermissionsOtherHasWritePermission(t *testing.T) {
	if os.Geteuid() != 0 {
		t.Skip("changing the file owner requires root")
	}

	// GIVEN
	filePath := filepath.Join(t.TempDir(), "testfile")

	filePerm := os.FileMode(0o702)
	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, filePerm)
	assert.NoError(t, err)
	defer file.Close()
	err = os.Chown(filePath, 0, 1000)
	assert.NoError(t, err)
	err = os.Chmod(filePath, filePerm)
	assert.NoError(t, err)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.Equal(t, false, result)
	assert.EqualError(t, err, "others have write permission")
}

func TestFileHasPermissionsFileNotFound(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "missing")

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.False(t, result)
	assert.Error(t, err)
}

func TestFileHasPermissionsStatFails(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "testfile")
	assert.NoError(t, os.WriteFile(filePath, []byte("#!/bin/sh\n"), 0o700))

	statErr := &fs.PathError{Op: "stat", Path: filePath, Err: fs.ErrPermission}
	statFile = func(name string) (os.FileInfo, error) {
		return nil, statErr
	}
	defer func() { statFile = os.Stat }()

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.False(t, result)
	assert.ErrorIs(t, err, fs.ErrPermission)
}

func TestWriteIntToFileAtomic(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "duty_cycle")
	err := os.WriteFile(filePath, []byte("255\n"), 0o644)
	assert.NoError(t, err)

	// WHEN
	err = WriteIntToFileAtomic(127, filePath)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, 127, value)
}

func TestWriteIntToFileAtomic_FollowsSymlink(t *testing.T) {
	// GIVEN
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	assert.NoError(t, os.WriteFile(target, []byte("0"), 0o644))
	assert.NoError(t, os.Symlink(target, link))

	// WHEN
	err := WriteIntToFileAtomic(42, link)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(target)
	assert.NoError(t, err)
	assert.Equal(t, 42, value)
}

func TestReadIntFromFile_Empty(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "empty")
	assert.NoError(t, os.WriteFile(filePath, nil, 0o644))

	// WHEN
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.Equal(t, -1, value)
	assert.EqualError(t, err, "file is empty: "+filePath)
}

func TestExpandHomeDir(t *testing.T) {
	// GIVEN
	path := "/sys/class/pwm/pwmchip0/pwm0/duty_cycle"

	// WHEN
	result, err := ExpandHomeDir(path)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, path, result)

	// WHEN
	result, err = ExpandHomeDir("~/duty")

	// THEN
	assert.NoError(t, err)
	assert.NotContains(t, result, "~")
	assert.True(t, filepath.IsAbs(result))
}

func TestWriteIntToFile(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "duty_cycle")

	// WHEN
	err := WriteIntToFile(255, filePath)

	// THEN
	assert.NoError(t, err)
	value, err := ReadIntFromFile(filePath)
	assert.NoError(t, err)
	assert.Equal(t, 255, value)
}
