package badger

import (
	"io"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	Saver interface {
		Save(w io.Writer) error
	}

	Loader interface {
		Load(r io.Reader) error
	}
)
