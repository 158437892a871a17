// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMP3File wraps any error go-mp3 reports while reading the stream header.
var ErrNotMP3File = errors.New("not a decodable MP3 stream")
