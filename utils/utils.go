package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

func FileExist(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteFileIfNotExist creates filePath with content, unless the file is already there.
// It reports whether a new file was written.
func WriteFileIfNotExist(filePath string, content []byte) (bool, error) {
	exists, err := FileExist(filePath)
	if err != nil || exists {
		return false, err
	}

	err = CreateDirIfNotExist(filepath.Dir(filePath))
	if err != nil {
		return false, err
	}

	return true, ioutil.WriteFile(filePath, content, 0600)
}
