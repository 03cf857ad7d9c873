// This file is part of Orchid.
//
// Orchid is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Orchid is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Orchid.  If not, see <https://www.gnu.org/licenses/>.

package romloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/orchid/curated"
	"github.com/spf13/afero"
)

// Sentinal error patterns.
const (
	EmptyFile      = "romloader: %s: file is empty"
	NoFile         = "romloader: %s: no suitable file in archive"
	FileTooLarge   = "romloader: %s: file is larger than %d bytes"
	UnexpectedHash = "romloader: %s: unexpected hash value (%s)"
)

// MaxSize is the largest file that can be loaded.
const MaxSize = 8 * 1024 * 1024

// Format of the file on disk.
type Format int

// List of valid Format values.
const (
	Raw Format = iota
	ZIP
	SevenZip
	Gzip
	RAR
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case ZIP:
		return "zip"
	case SevenZip:
		return "7z"
	case Gzip:
		return "gzip"
	case RAR:
		return "rar"
	}
	return "unknown"
}

var (
	magicZIP      = []byte{0x50, 0x4b, 0x03, 0x04}
	magicZIPEmpty = []byte{0x50, 0x4b, 0x05, 0x06}
	magic7z       = []byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}
	magicGzip     = []byte{0x1f, 0x8b}
	magicRAR      = []byte{0x52, 0x61, 0x72, 0x21}
)

// Detect the format from the first bytes of a file.
func Detect(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, magicZIP), bytes.HasPrefix(header, magicZIPEmpty):
		return ZIP
	case bytes.HasPrefix(header, magic7z):
		return SevenZip
	case bytes.HasPrefix(header, magicRAR):
		return RAR
	case bytes.HasPrefix(header, magicGzip):
		return Gzip
	}
	return Raw
}

// Loader specifies a file to load.
type Loader struct {
	fs afero.Fs

	// filename of the file to load
	Filename string

	// extensions of files to accept from inside an archive. the match is
	// case insensitive. an empty list accepts any file
	Extensions []string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// the format of the file. only valid after a successful Load()
	Format Format

	// the name of the file that was loaded. for archives this is the name
	// of the file inside the archive
	Name string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The file is on the host operating system's filesystem.
func NewLoader(filename string) Loader {
	return NewLoaderFs(afero.NewOsFs(), filename)
}

// NewLoaderFs is the same as NewLoader() except that the filesystem is
// specified.
func NewLoaderFs(fs afero.Fs, filename string) Loader {
	return Loader{
		fs:       fs,
		Filename: filename,
	}
}

func (ld Loader) String() string {
	if !ld.HasLoaded() {
		return ld.Filename
	}
	if ld.Format == Raw {
		return fmt.Sprintf("%s (%d bytes) %s", ld.Filename, len(ld.Data), ld.Hash)
	}
	return fmt.Sprintf("%s [%s: %s] (%d bytes) %s", ld.Filename, ld.Format, ld.Name, len(ld.Data), ld.Hash)
}

// ShortName returns the filename without the path and extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// wanted returns true if the name of a file in an archive has one of the
// accepted extensions
func (ld Loader) wanted(name string) bool {
	if len(ld.Extensions) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range ld.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// Load the file. Calling Load() on a Loader that has already loaded does
// nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	if ld.fs == nil {
		ld.fs = afero.NewOsFs()
	}

	f, err := ld.fs.Open(ld.Filename)
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return curated.Errorf("romloader: %v", err)
	}
	if fi.Size() == 0 {
		return curated.Errorf(EmptyFile, ld.Filename)
	}

	header := make([]byte, 8)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF {
		return curated.Errorf("romloader: %v", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return curated.Errorf("romloader: %v", err)
	}

	format := Detect(header[:n])

	var data []byte
	var name string

	switch format {
	case ZIP:
		data, name, err = ld.fromZIP(f, fi.Size())
	case SevenZip:
		data, name, err = ld.from7z(f, fi.Size())
	case RAR:
		data, name, err = ld.fromRAR(f)
	case Gzip:
		data, name, err = ld.fromGzip(f)
	default:
		name = filepath.Base(ld.Filename)
		data, err = ld.limitedRead(f, name)
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, ld.Filename, hash)
	}

	ld.Hash = hash
	ld.Format = format
	ld.Name = name
	ld.Data = data

	return nil
}

// limitedRead reads no more than MaxSize bytes
func (ld Loader) limitedRead(r io.Reader, name string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxSize+1))
	if err != nil {
		return nil, curated.Errorf("romloader: %s: %v", name, err)
	}
	if len(data) > MaxSize {
		return nil, curated.Errorf(FileTooLarge, name, MaxSize)
	}
	if len(data) == 0 {
		return nil, curated.Errorf(EmptyFile, name)
	}
	return data, nil
}
