package response

import (
	"tour-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

// mapInto copies same-named fields from src into a new T.
func mapInto[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, errs.Wrapf(err, "map %T into response", src)
	}
	return &dst, nil
}

func mapEach[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		v, err := mapInto[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
