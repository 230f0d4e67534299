// Package mqd has functions for loading interpreter catalogs using the MQD
// (MinQ Data) file format, a TOML-based format that is used to define the
// grammar templates and game objects the interpreter runs over.
package mqd

import (
	"fmt"
	"os"
	"unicode"

	"github.com/BurntSushi/toml"
)

// CurrentFormat is the value the format key of every MQD file must have.
const CurrentFormat = "minq"

// FileInfo contains the essential information all MQD format files must
// contain. It can be obtained from a file by reading it into memory and
// calling ScanFileInfo on the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// LoadDataFile loads grammar and world catalogs from an MQD data file.
func LoadDataFile(path string) (Data, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return Data{}, err
	}

	info, err := ScanFileInfo(fileData)
	if err != nil {
		return Data{}, fmt.Errorf("scan file header: %w", err)
	}
	if info.Format != CurrentFormat {
		return Data{}, fmt.Errorf("file does not appear to be in MQD format; format key is %q", info.Format)
	}
	if info.Type != "data" {
		return Data{}, fmt.Errorf("file is not an MQD data file; type key is %q", info.Type)
	}

	var unmarshaled topLevelData
	if err := toml.Unmarshal(fileData, &unmarshaled); err != nil {
		return Data{}, err
	}

	return parseData(unmarshaled)
}

// ScanFileInfo takes the given file bytes and attempts to read the MQD format
// common header info from them. The bytes are read up to the first instance
// of a table definition header and those bytes are parsed for the info. If
// there is an error reading the info, returns a non-nil error.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-level table
	var topLevelEnd int = -1
	var onNewLine bool
	for b := range data {
		if onNewLine {
			if data[b] == '[' {
				topLevelEnd = b
				break
			}
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
