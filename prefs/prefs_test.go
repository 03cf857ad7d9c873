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

package prefs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/orchid/curated"
	"github.com/jetsetilly/orchid/prefs"
	"github.com/jetsetilly/orchid/test"
	"github.com/spf13/afero"
)

const prefsPath = "/orchid/preferences"

func readFile(t *testing.T, fs afero.Fs) string {
	t.Helper()
	b, err := afero.ReadFile(fs, prefsPath)
	test.DemandSuccess(t, err)
	return string(b)
}

func TestBool(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectFailure(t, dsk.Add("test", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("TRUE"))
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\ntest :: true\ntestB :: true\n")

	test.ExpectSuccess(t, w.Set("no"))
	test.ExpectEquality(t, w.Get().(bool), false)
	test.ExpectFailure(t, w.Set(10))

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, w.Get().(bool), true)
	test.ExpectEquality(t, v.AllowLogging(), true)
}

func TestString(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("hello world"))
	v.SetMaxLen(5)
	test.ExpectEquality(t, v.String(), "hello")
	test.ExpectSuccess(t, v.Set("wonderful"))
	test.ExpectEquality(t, v.String(), "wonde")

	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\nfoo :: wonde\n")
}

func TestInt(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set("0x800000"))
	test.ExpectEquality(t, v.Get().(int), 0x800000)
	test.ExpectFailure(t, v.Set("eight"))
	test.ExpectEquality(t, v.Get().(int), 0x800000)

	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\nnumber :: 8388608\n")

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectSuccess(t, v.Set("59.94"))
	test.ExpectApproximate(t, v.Get().(float64), 59.94, 0.001)
	test.ExpectEquality(t, v.String(), "59.94")
	test.ExpectFailure(t, v.Set(true))
}

func TestGeneric(t *testing.T) {
	var w, h int
	g := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)
	test.ExpectSuccess(t, g.Set("640,480"))
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)
	test.ExpectEquality(t, g.String(), "640,480")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, post, 10)
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 10)
	test.ExpectEquality(t, post, 10)
}

func TestSharedFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	dskA, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)
	dskB, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var a prefs.Int
	var b prefs.Bool
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, dskB.Add("b", &b))

	test.ExpectSuccess(t, a.Set(1))
	test.ExpectSuccess(t, dskA.Save())
	test.ExpectSuccess(t, b.Set(true))
	test.ExpectSuccess(t, dskB.Save())

	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\na :: 1\nb :: true\n")
}

func TestMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))

	err = dsk.Load(false)
	test.ExpectEquality(t, curated.Is(err, prefs.NoPrefsFile), true)

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, dsk.Load(true))
	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\nv :: 3\n")
}

func TestMalformedFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	test.DemandSuccess(t, afero.WriteFile(fs, prefsPath, []byte("v :: 3\n"), 0o600))

	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))
	err = dsk.Load(false)
	test.ExpectEquality(t, curated.Is(err, prefs.MalformedFile), true)
}

func TestDefunctKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	data := "*** do not edit this file by hand ***\nmb86292.viewer :: true\nv :: 3\n"
	test.DemandSuccess(t, afero.WriteFile(fs, prefsPath, []byte(data), 0o600))

	dsk, err := prefs.NewDiskFs(fs, prefsPath)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 3)
	test.ExpectSuccess(t, dsk.Save())
	test.ExpectEquality(t, readFile(t, fs), "*** do not edit this file by hand ***\nv :: 3\n")
}
