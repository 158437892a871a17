// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/joho/godotenv"
)

// ReferenceName is the drum loop the augmentation suites were written
// against (https://freewavesamples.com/yamaha-v50-rock-beat-120-bpm).
const ReferenceName = "Yamaha-V50-Rock-Beat-120bpm.wav"

// ReferencePath locates the reference recording under
// $TEST_DIR/res/audio. TEST_DIR may come from the environment or from a
// .env file at the module root. ok is false when the file is absent, in
// which case callers synthesize a stand-in with Beat.
func ReferencePath() (path string, ok bool) {
	if root := moduleRoot(); root != "" {
		// a missing .env is fine
		_ = godotenv.Load(filepath.Join(root, ".env"))
	}

	dir := os.Getenv("TEST_DIR")
	if dir == "" {
		return "", false
	}

	path = filepath.Join(dir, "res", "audio", ReferenceName)
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}

func moduleRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	// internal/audiotest/fixture.go -> module root
	return filepath.Join(filepath.Dir(file), "..", "..")
}
