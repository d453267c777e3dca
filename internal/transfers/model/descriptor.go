package model

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-transfers/internal/crypto"
)

// SpentOutputDescriptor identifies an output for spend tracking: key outputs by
// key image, multisignature outputs by (amount, global index). It is comparable
// and can be used as a map key; the Type field keeps the two kinds apart.
type SpentOutputDescriptor struct {
	Type              OutputType
	KeyImage          crypto.KeyImage
	Amount            uint64
	GlobalOutputIndex uint32
}

// KeyImageDescriptor returns the descriptor of a key output.
func KeyImageDescriptor(img crypto.KeyImage) SpentOutputDescriptor {
	return SpentOutputDescriptor{Type: OutputTypeKey, KeyImage: img}
}

// MultisignatureDescriptor returns the descriptor of a multisignature output.
func MultisignatureDescriptor(amount uint64, globalOutputIndex uint32) SpentOutputDescriptor {
	return SpentOutputDescriptor{Type: OutputTypeMultisignature, Amount: amount, GlobalOutputIndex: globalOutputIndex}
}

// DescriptorOf returns the descriptor of an owned output.
func DescriptorOf(o TransactionOutputInformationIn) SpentOutputDescriptor {
	switch o.Type {
	case OutputTypeKey:
		return KeyImageDescriptor(o.KeyImage)
	case OutputTypeMultisignature:
		return MultisignatureDescriptor(o.Amount, o.GlobalOutputIndex)
	default:
		return SpentOutputDescriptor{}
	}
}

// InputDescriptor returns the descriptor of the output spent by in, if in
// spends an output at all.
func InputDescriptor(in Input) (SpentOutputDescriptor, uint64, bool) {
	switch v := in.(type) {
	case KeyInput:
		return KeyImageDescriptor(v.KeyImage), v.Amount, true
	case MultisignatureInput:
		return MultisignatureDescriptor(v.Amount, v.OutputIndex), v.Amount, true
	default:
		return SpentOutputDescriptor{}, 0, false
	}
}

func (d SpentOutputDescriptor) String() string {
	switch d.Type {
	case OutputTypeKey:
		return "key_image:" + d.KeyImage.String()
	case OutputTypeMultisignature:
		return fmt.Sprintf("multisig:%d/%d", d.Amount, d.GlobalOutputIndex)
	default:
		return "invalid"
	}
}
