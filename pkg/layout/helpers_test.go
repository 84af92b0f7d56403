package layout

import (
	stderrors "errors"

	"github.com/matzehuels/collage/pkg/errors"
)

func asError(err error, target **errors.Error) bool {
	return stderrors.As(err, target)
}
