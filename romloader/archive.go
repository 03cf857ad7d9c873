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
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/jetsetilly/orchid/curated"
	"github.com/nwaples/rardecode/v2"
)

func (ld Loader) fromZIP(r io.ReaderAt, size int64) ([]byte, string, error) {
	z, err := zip.NewReader(r, size)
	if err != nil {
		return nil, "", curated.Errorf("romloader: zip: %v", err)
	}

	for _, f := range z.File {
		if f.FileInfo().IsDir() || !ld.wanted(f.Name) {
			continue // for loop
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf("romloader: zip: %v", err)
		}
		defer rc.Close()

		data, err := ld.limitedRead(rc, f.Name)
		return data, filepath.Base(f.Name), err
	}

	return nil, "", curated.Errorf(NoFile, ld.Filename)
}

func (ld Loader) from7z(r io.ReaderAt, size int64) ([]byte, string, error) {
	z, err := sevenzip.NewReader(r, size)
	if err != nil {
		return nil, "", curated.Errorf("romloader: 7z: %v", err)
	}

	for _, f := range z.File {
		if f.FileInfo().IsDir() || !ld.wanted(f.Name) {
			continue // for loop
		}

		rc, err := f.Open()
		if err != nil {
			return nil, "", curated.Errorf("romloader: 7z: %v", err)
		}
		defer rc.Close()

		data, err := ld.limitedRead(rc, f.Name)
		return data, filepath.Base(f.Name), err
	}

	return nil, "", curated.Errorf(NoFile, ld.Filename)
}

func (ld Loader) fromRAR(r io.Reader) ([]byte, string, error) {
	z, err := rardecode.NewReader(r)
	if err != nil {
		return nil, "", curated.Errorf("romloader: rar: %v", err)
	}

	for {
		hdr, err := z.Next()
		if err == io.EOF {
			break // for loop
		}
		if err != nil {
			return nil, "", curated.Errorf("romloader: rar: %v", err)
		}
		if hdr.IsDir || !ld.wanted(hdr.Name) {
			continue // for loop
		}

		data, err := ld.limitedRead(z, hdr.Name)
		return data, filepath.Base(hdr.Name), err
	}

	return nil, "", curated.Errorf(NoFile, ld.Filename)
}

// a gzip file contains either a single file or a tar archive
func (ld Loader) fromGzip(r io.Reader) ([]byte, string, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, "", curated.Errorf("romloader: gzip: %v", err)
	}
	defer gz.Close()

	lower := strings.ToLower(ld.Filename)
	if strings.HasSuffix(lower, ".tar.gz") || strings.HasSuffix(lower, ".tgz") {
		return ld.fromTar(gz)
	}

	name := gz.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(ld.Filename), filepath.Ext(ld.Filename))
	}

	data, err := ld.limitedRead(gz, name)
	return data, name, err
}

func (ld Loader) fromTar(r io.Reader) ([]byte, string, error) {
	tr := tar.NewReader(r)

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break // for loop
		}
		if err != nil {
			return nil, "", curated.Errorf("romloader: tar: %v", err)
		}
		if hdr.Typeflag != tar.TypeReg || !ld.wanted(hdr.Name) {
			continue // for loop
		}

		data, err := ld.limitedRead(tr, hdr.Name)
		return data, filepath.Base(hdr.Name), err
	}

	return nil, "", curated.Errorf(NoFile, ld.Filename)
}
