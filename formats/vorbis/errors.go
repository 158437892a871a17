// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

// ErrNotVorbisFile wraps any error oggvorbis reports while reading the headers.
var ErrNotVorbisFile = errors.New("not a decodable Ogg Vorbis stream")
