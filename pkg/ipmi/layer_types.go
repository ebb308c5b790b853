package ipmi

import (
	"github.com/google/gopacket"
)

var (
	layerTypeAES128CBC = gopacket.RegisterLayerType(
		1150,
		gopacket.LayerTypeMetadata{
			Name: "AES-128-CBC",
		},
	)
)
