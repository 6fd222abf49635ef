package util

import (
	"encoding/json"
	"os"
)

// used in tests to shorten timer based checks
func IsRunningOnCI() bool {
	return os.Getenv("ACTION_ENVIRONMENT") == "CI" || os.Getenv("CI") == "true"
}

// quick way to copy a struct into another
func DeepCopy[A any](source, dest A) {
	byt, _ := json.Marshal(source)
	_ = json.Unmarshal(byt, dest)
}
