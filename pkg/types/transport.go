package types

import (
	"fmt"
	"strings"
)

// Endianness selects the byte order of the linked executable
type Endianness string

const (
	LittleEndian Endianness = "LE"
	BigEndian    Endianness = "BE"
)

// ParseEndianness accepts LE/BE in any case; an empty value means LittleEndian
func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(LittleEndian):
		return LittleEndian, nil
	case string(BigEndian):
		return BigEndian, nil
	default:
		return "", fmt.Errorf("unknown endianness %q (expected LE or BE)", s)
	}
}

// TransportKind is the link used to reach the brick during upload
type TransportKind string

const (
	TransportUSB       TransportKind = "usb"
	TransportBluetooth TransportKind = "bluetooth"
)

// ParseTransport accepts "usb", "bluetooth" or the short form "bt"
func ParseTransport(s string) (TransportKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TransportUSB):
		return TransportUSB, nil
	case string(TransportBluetooth), "bt":
		return TransportBluetooth, nil
	default:
		return "", fmt.Errorf("unknown transport %q (expected usb or bluetooth)", s)
	}
}
