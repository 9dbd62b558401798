package document

import (
	"fmt"

	"hmpaquetes/internal/pkg/errs"
)

// Kind is the closed set of document variants. Values are the stored names.
type Kind string

const (
	KindIntake   Kind = "entradarecibida"
	KindTransfer Kind = "transferenciaalmacen"
	KindDispatch Kind = "despachomensajero"
)

var kinds = map[Kind]struct{}{
	KindIntake:   {},
	KindTransfer: {},
	KindDispatch: {},
}

// Kinds lists every variant in a stable order.
func Kinds() []Kind {
	return []Kind{KindIntake, KindTransfer, KindDispatch}
}

func ParseKind(raw string) (Kind, error) {
	k := Kind(raw)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	if _, ok := kinds[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("documento_type", fmt.Errorf("unknown kind %q", string(k)))
	}
	return nil
}

func (k Kind) String() string {
	return string(k)
}

// Ref addresses a single document of any kind.
type Ref struct {
	Kind Kind
	ID   int64
}

func NewRef(kind Kind, id int64) (Ref, error) {
	if err := kind.Validate(); err != nil {
		return Ref{}, err
	}
	if id <= 0 {
		return Ref{}, errs.NewValueIsOutOfRangeError("documento_id", id, 1, "max int64")
	}
	return Ref{Kind: kind, ID: id}, nil
}

func (r Ref) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}
