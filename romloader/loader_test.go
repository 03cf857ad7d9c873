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

package romloader_test

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/romloader"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

var romData = []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}

func writeFile(t *testing.T, fs afero.Fs, name string, data []byte) {
	t.Helper()
	test.DemandSuccess(t, afero.WriteFile(fs, name, data, 0o600))
}

func zipData(t *testing.T, files map[string][]byte, order []string) []byte {
	t.Helper()
	var b bytes.Buffer
	w := zip.NewWriter(&b)
	for _, n := range order {
		fw, err := w.Create(n)
		test.DemandSuccess(t, err)
		_, err = fw.Write(files[n])
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, w.Close())
	return b.Bytes()
}

func gzipData(t *testing.T, name string, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := gzip.NewWriter(&b)
	w.Name = name
	_, err := w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())
	return b.Bytes()
}

func TestDetect(t *testing.T) {
	test.ExpectEquality(t, romloader.Detect([]byte{0x50, 0x4b, 0x03, 0x04, 0x00}), romloader.ZIP)
	test.ExpectEquality(t, romloader.Detect([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}), romloader.SevenZip)
	test.ExpectEquality(t, romloader.Detect([]byte("Rar!\x1a\x07")), romloader.RAR)
	test.ExpectEquality(t, romloader.Detect([]byte{0x1f, 0x8b, 0x08}), romloader.Gzip)
	test.ExpectEquality(t, romloader.Detect([]byte{0x1f}), romloader.Raw)
	test.ExpectEquality(t, romloader.Detect(romData), romloader.Raw)
	test.ExpectEquality(t, romloader.SevenZip.String(), "7z")
}

func TestRaw(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "roms/test.bin", romData)

	ld := romloader.NewLoaderFs(fs, "roms/test.bin")
	test.ExpectEquality(t, ld.HasLoaded(), false)
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.HasLoaded(), true)
	test.ExpectEquality(t, bytes.Equal(ld.Data, romData), true)
	test.ExpectEquality(t, ld.Format, romloader.Raw)
	test.ExpectEquality(t, ld.Name, "test.bin")
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum(romData)))
	test.ExpectEquality(t, ld.ShortName(), "test")
}

func TestHash(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "test.bin", romData)

	ld := romloader.NewLoaderFs(fs, "test.bin")
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(romData))
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoaderFs(fs, "test.bin")
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectEquality(t, curated.Is(err, romloader.UnexpectedHash), true)
	test.ExpectEquality(t, ld.HasLoaded(), false)
}

func TestEmptyAndMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "empty.bin", []byte{})

	ld := romloader.NewLoaderFs(fs, "empty.bin")
	test.ExpectEquality(t, curated.Is(ld.Load(), romloader.EmptyFile), true)

	ld = romloader.NewLoaderFs(fs, "missing.bin")
	test.ExpectFailure(t, ld.Load())
}

func TestTooLarge(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "big.bin", make([]byte, romloader.MaxSize+1))

	ld := romloader.NewLoaderFs(fs, "big.bin")
	test.ExpectEquality(t, curated.Is(ld.Load(), romloader.FileTooLarge), true)

	writeFile(t, fs, "max.bin", make([]byte, romloader.MaxSize))
	ld = romloader.NewLoaderFs(fs, "max.bin")
	test.ExpectSuccess(t, ld.Load())
}

func TestZIP(t *testing.T) {
	fs := afero.NewMemMapFs()
	files := map[string][]byte{
		"readme.txt":  []byte("not this one"),
		"game/sbp.p1": romData,
	}
	writeFile(t, fs, "sbp.zip", zipData(t, files, []string{"readme.txt", "game/sbp.p1"}))

	// first file in the archive
	ld := romloader.NewLoaderFs(fs, "sbp.zip")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Format, romloader.ZIP)
	test.ExpectEquality(t, ld.Name, "readme.txt")

	// first file with the extension
	ld = romloader.NewLoaderFs(fs, "sbp.zip")
	ld.Extensions = []string{".P1"}
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Name, "sbp.p1")
	test.ExpectEquality(t, bytes.Equal(ld.Data, romData), true)

	ld = romloader.NewLoaderFs(fs, "sbp.zip")
	ld.Extensions = []string{".rom"}
	test.ExpectEquality(t, curated.Is(ld.Load(), romloader.NoFile), true)
}

func TestGzip(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "vram.bin.gz", gzipData(t, "vram.bin", romData))

	ld := romloader.NewLoaderFs(fs, "vram.bin.gz")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Format, romloader.Gzip)
	test.ExpectEquality(t, ld.Name, "vram.bin")
	test.ExpectEquality(t, bytes.Equal(ld.Data, romData), true)

	// no name in the gzip header
	writeFile(t, fs, "list.dl.gz", gzipData(t, "", romData))
	ld = romloader.NewLoaderFs(fs, "list.dl.gz")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Name, "list.dl")
}

func TestTarGzip(t *testing.T) {
	var tb bytes.Buffer
	tw := tar.NewWriter(&tb)
	for _, n := range []string{"a.txt", "b.bin"} {
		test.DemandSuccess(t, tw.WriteHeader(&tar.Header{
			Name:     n,
			Mode:     0o600,
			Size:     int64(len(romData)),
			Typeflag: tar.TypeReg,
		}))
		_, err := tw.Write(romData)
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, tw.Close())

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "roms.tar.gz", gzipData(t, "", tb.Bytes()))

	ld := romloader.NewLoaderFs(fs, "roms.tar.gz")
	ld.Extensions = []string{".bin"}
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, ld.Name, "b.bin")
	test.ExpectEquality(t, bytes.Equal(ld.Data, romData), true)
}

func TestCorruptArchives(t *testing.T) {
	fs := afero.NewMemMapFs()

	bad7z := append([]byte{0x37, 0x7a, 0xbc, 0xaf, 0x27, 0x1c}, bytes.Repeat([]byte{0x55}, 64)...)
	writeFile(t, fs, "bad.7z", bad7z)
	ld := romloader.NewLoaderFs(fs, "bad.7z")
	test.ExpectFailure(t, ld.Load())

	badRAR := append([]byte("Rar!\x1a\x07\x00"), bytes.Repeat([]byte{0x55}, 64)...)
	writeFile(t, fs, "bad.rar", badRAR)
	ld = romloader.NewLoaderFs(fs, "bad.rar")
	test.ExpectFailure(t, ld.Load())

	writeFile(t, fs, "bad.zip", []byte{0x50, 0x4b, 0x03, 0x04, 0x00, 0x00})
	ld = romloader.NewLoaderFs(fs, "bad.zip")
	test.ExpectFailure(t, ld.Load())
}
