// Package vlu selects between the integer packing codecs of this module by
// name.
package vlu

import (
	"errors"
	"sort"

	"github.com/zeebo/errs"

	"github.com/calebcase/vlu/leb128"
	"github.com/calebcase/vlu/vlu8"
)

// Error classes.
var (
	Error        = errs.Class("vlu")
	UnknownError = errs.Class("vlu: unknown codec")
)

// Codec packs vectors of unsigned integers.
type Codec interface {
	Name() string

	// EncodedSize returns the packed size of num in bytes.
	EncodedSize(num uint64) int

	EncodeVec(values []uint64) []byte
	DecodeVec(buf []byte) ([]uint64, error)
	ItemsInBuffer(buf []byte) int
}

// Default is the codec used when none is named.
const Default = "vlu8"

type vlu8Codec struct{}

func (vlu8Codec) Name() string                           { return "vlu8" }
func (vlu8Codec) EncodedSize(num uint64) int             { return vlu8.ChainSize(num) }
func (vlu8Codec) EncodeVec(values []uint64) []byte       { return vlu8.EncodeVec(values) }
func (vlu8Codec) DecodeVec(buf []byte) ([]uint64, error) { return vlu8.DecodeVec(buf) }
func (vlu8Codec) ItemsInBuffer(buf []byte) int           { return vlu8.ItemsInBuffer(buf) }

type leb128Codec struct{}

func (leb128Codec) Name() string                           { return "leb128" }
func (leb128Codec) EncodedSize(num uint64) int             { return leb128.EncodedSize(num) }
func (leb128Codec) EncodeVec(values []uint64) []byte       { return leb128.EncodeVec(values) }
func (leb128Codec) DecodeVec(buf []byte) ([]uint64, error) { return leb128.DecodeVec(buf) }
func (leb128Codec) ItemsInBuffer(buf []byte) int           { return leb128.ItemsInBuffer(buf) }

var codecs = map[string]Codec{
	"vlu8":   vlu8Codec{},
	"leb128": leb128Codec{},
}

// Lookup returns the codec with the given name. An empty name selects
// Default.
func Lookup(name string) (Codec, error) {
	if name == "" {
		name = Default
	}

	c, ok := codecs[name]
	if !ok {
		return nil, UnknownError.New("%q (available: %v)", name, Names())
	}

	return c, nil
}

// IsTruncated reports whether err says the input ended inside a value. Errors
// wrapped by other packages are unwrapped first.
func IsTruncated(err error) bool {
	for ; err != nil; err = errors.Unwrap(err) {
		if vlu8.TruncatedError.Has(err) || leb128.TruncatedError.Has(err) {
			return true
		}
	}

	return false
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
