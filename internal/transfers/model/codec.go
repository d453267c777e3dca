package model

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/serialization"
)

const maxTransactionItems = 1 << 16

func writePrefix(w *serialization.Writer, p TransactionPrefix) {
	w.Uint8(p.Version)
	w.Uint64(p.UnlockTime)

	w.Uint64(uint64(len(p.Inputs)))
	for _, in := range p.Inputs {
		w.Uint8(in.inputTag())
		switch v := in.(type) {
		case BaseInput:
			w.Uint32(v.BlockIndex)
		case KeyInput:
			w.Uint64(v.Amount)
			w.Uint64(uint64(len(v.OutputIndexes)))
			for _, idx := range v.OutputIndexes {
				w.Uint32(idx)
			}
			w.Fixed(v.KeyImage[:])
		case MultisignatureInput:
			w.Uint64(v.Amount)
			w.Uint8(v.SignatureCount)
			w.Uint32(v.OutputIndex)
		}
	}

	w.Uint64(uint64(len(p.Outputs)))
	for _, out := range p.Outputs {
		w.Uint64(out.Amount)
		w.Uint8(out.Target.outputTag())
		switch v := out.Target.(type) {
		case KeyOutput:
			w.Fixed(v.Key[:])
		case MultisignatureOutput:
			w.Uint64(uint64(len(v.Keys)))
			for _, k := range v.Keys {
				w.Fixed(k[:])
			}
			w.Uint8(v.RequiredSignatureCount)
		}
	}

	w.Blob(p.Extra)
}

func readPrefix(r *serialization.Reader) TransactionPrefix {
	var p TransactionPrefix
	p.Version = r.Uint8("version")
	p.UnlockTime = r.Uint64("unlock_time")

	inputs := r.Count("vin", maxTransactionItems)
	for i := 0; i < inputs && r.Err() == nil; i++ {
		switch tag := r.Uint8("vin.tag"); tag {
		case tagBase:
			p.Inputs = append(p.Inputs, BaseInput{BlockIndex: r.Uint32("vin.height")})
		case tagKey:
			in := KeyInput{Amount: r.Uint64("vin.amount")}
			offsets := r.Count("vin.key_offsets", maxTransactionItems)
			for j := 0; j < offsets; j++ {
				in.OutputIndexes = append(in.OutputIndexes, r.Uint32("vin.key_offset"))
			}
			r.Fixed("vin.k_image", in.KeyImage[:])
			p.Inputs = append(p.Inputs, in)
		case tagMultisignature:
			p.Inputs = append(p.Inputs, MultisignatureInput{
				Amount:         r.Uint64("vin.amount"),
				SignatureCount: r.Uint8("vin.signatures"),
				OutputIndex:    r.Uint32("vin.outputIndex"),
			})
		default:
			r.Fail(fmt.Errorf("unknown input tag 0x%02x", tag))
		}
	}

	outputs := r.Count("vout", maxTransactionItems)
	for i := 0; i < outputs && r.Err() == nil; i++ {
		out := Output{Amount: r.Uint64("vout.amount")}
		switch tag := r.Uint8("vout.tag"); tag {
		case tagKey:
			var key crypto.PublicKey
			r.Fixed("vout.key", key[:])
			out.Target = KeyOutput{Key: key}
		case tagMultisignature:
			var target MultisignatureOutput
			keys := r.Count("vout.keys", maxTransactionItems)
			for j := 0; j < keys; j++ {
				var key crypto.PublicKey
				r.Fixed("vout.key", key[:])
				target.Keys = append(target.Keys, key)
			}
			target.RequiredSignatureCount = r.Uint8("vout.required_signatures")
			out.Target = target
		default:
			r.Fail(fmt.Errorf("unknown output tag 0x%02x", tag))
		}
		p.Outputs = append(p.Outputs, out)
	}

	p.Extra = r.Blob("extra")
	return p
}
