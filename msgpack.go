// Copyright 2020 Aleksandr Demakin. All rights reserved.

package posit

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Posit{}
	_ msgpack.CustomDecoder = (*Posit)(nil)
)

// EncodeMsgpack encodes p as a [nbits, es, bits] array.
func (p Posit) EncodeMsgpack(enc *msgpack.Encoder) error {
	env := p.Env()
	if err := enc.EncodeArrayLen(3); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(env.NBits)); err != nil {
		return err
	}
	if err := enc.EncodeInt(int64(env.ES)); err != nil {
		return err
	}
	return enc.EncodeUint(p.bits)
}

// DecodeMsgpack decodes a value written by EncodeMsgpack.
func (p *Posit) DecodeMsgpack(dec *msgpack.Decoder) error {
	l, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if l != 3 {
		return fmt.Errorf("posit: bad msgpack array length %d", l)
	}
	nbits, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	es, err := dec.DecodeInt()
	if err != nil {
		return err
	}
	bits, err := dec.DecodeUint64()
	if err != nil {
		return err
	}
	result, err := FromBits(bits, Env{NBits: nbits, ES: es})
	if err != nil {
		return err
	}
	*p = result
	return nil
}
