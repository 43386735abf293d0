package store

import (
	"context"

	"go-wiktionary-wsd/lib/dataset"

	"github.com/macdub/go-colorlog"
)

var Logger = colorlog.New(colorlog.Linfo)

// Sink receives the finished dataset in addition to the flat files.
type Sink interface {
	Store(ctx context.Context, d dataset.Dataset) error
	Close(ctx context.Context) error
}
