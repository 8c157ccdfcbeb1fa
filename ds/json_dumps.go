package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// DumpJSON renders t for diagnostics; a marshalling failure is rendered as its message.
func DumpJSON[T any](t T) string {
	return dumpJSON(t, "")
}

func DumpIndentedJSON[T any](t T) string {
	return dumpJSON(t, "  ")
}

func dumpJSON[T any](t T, indent string) string {
	var (
		tBytes []byte
		err    error
	)
	if indent == "" {
		tBytes, err = json.Marshal(t)
	} else {
		tBytes, err = json.MarshalIndent(t, "", indent)
	}
	if err != nil {
		return errors.Wrap(err, "ds.DumpJSON error").Error()
	}
	return string(tBytes)
}
