package files

import (
	"io/fs"
	"os"

	"github.com/zeebo/errs"

	"github.com/ib-77/result/pkg/result"
)

// ReadError is the class of every failure produced by this package.
var ReadError = errs.Class("read")

// Text is the outcome of reading a whole file as text.
type Text = result.Result[string, error]

func SafeReadString(path string) Text {
	return toText(os.ReadFile(path))
}

func SafeReadStringFS(fsys fs.FS, path string) Text {
	return toText(fs.ReadFile(fsys, path))
}

func ReadAll(paths ...string) []Text {
	out := make([]Text, 0, len(paths))
	for _, p := range paths {
		out = append(out, SafeReadString(p))
	}
	return out
}

func toText(raw []byte, err error) Text {
	if err != nil {
		return result.Failure[string](ReadError.Wrap(err))
	}
	return result.Success[string, error](string(raw))
}
