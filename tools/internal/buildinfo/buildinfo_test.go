// seehuhn.de/go/colorspace - convert colors between color models
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		info *debug.BuildInfo
		want string
	}{
		{
			&debug.BuildInfo{
				GoVersion: "go1.24.3",
				Main:      debug.Module{Path: "seehuhn.de/go/colorspace", Version: "v0.2.0"},
			},
			"colorconv (seehuhn.de/go/colorspace v0.2.0, go1.24.3)",
		},
		{
			&debug.BuildInfo{
				Main: debug.Module{Path: "seehuhn.de/go/colorspace", Version: "(devel)"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			"colorconv (seehuhn.de/go/colorspace 01234567+dirty)",
		},
		{
			&debug.BuildInfo{
				GoVersion: "go1.24.3",
				Main:      debug.Module{Path: "seehuhn.de/go/colorspace", Version: "(devel)"},
			},
			"colorconv",
		},
	}
	for _, tc := range cases {
		if got := describe("colorconv", tc.info); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
}

func TestShort(t *testing.T) {
	if got := Short("colorconv"); got == "" {
		t.Error("empty description")
	}
}
